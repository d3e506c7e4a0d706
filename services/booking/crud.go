package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/services/scheduling"
	"freeflow/utils"
)

// CreateBooking materializes a booking from a slot request: it resolves the
// service type, derives the time range, price and balance, verifies the slot
// still has capacity, and persists the record in pending state.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	st, err := svc.serviceType(ctx, req.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	start, err := parseStartTime(req.Date, req.Time, req.Timezone)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(st.Duration) * time.Minute)
	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	sched, err := svc.providerSchedule(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if !sched.WorksOn(start) || sched.OffDuring(start, end) {
		return nil, ErrSlotUnavailable
	}

	capacity := st.MaxCapacity
	if capacity <= 0 {
		capacity = 1
	}
	taken, err := svc.overlappingBookings(ctx, req.ProviderID, start, end, st.BufferMinutes)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if taken >= capacity {
		return nil, ErrSlotUnavailable
	}

	booking := &models.Booking{
		BookingNumber:       newBookingNumber(),
		Title:               st.Name,
		Description:         req.Notes,
		BookingType:         bookingTypeFor(st),
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		GuestCount:          req.GuestCount,
		ProviderID:          req.ProviderID,
		ProviderName:        req.ProviderName,
		ServiceID:           st.ID,
		ServiceName:         st.Name,
		StartTime:           start,
		EndTime:             end,
		DurationMinutes:     st.Duration,
		Timezone:            req.Timezone,
		BufferBeforeMinutes: st.BufferMinutes,
		BufferAfterMinutes:  st.BufferMinutes,
		Status:              models.BookingStatusPending,
		Price:               st.Price,
		BalanceDue:          st.Price,
		Currency:            "USD",
		PaymentStatus:       models.PaymentStatusUnpaid,
		Capacity:            capacity,
		SlotsBooked:         1,
	}
	if req.AddVideoLink {
		booking.MeetingURL = fmt.Sprintf("https://meet.freeflow.app/%s", booking.BookingNumber)
	}

	if err := svc.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	svc.invalidateStatsCache(ctx, booking.ProviderID)

	utils.GetLogger().Info("Booking created",
		zap.String("bookingId", booking.ID),
		zap.String("bookingNumber", booking.BookingNumber),
		zap.Time("startTime", booking.StartTime),
	)
	return booking, nil
}

// GetBooking returns one booking by id.
func (svc *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return booking, nil
}

// ListBookings returns all bookings narrowed by the filter's query and enum
// predicates, ordered by start time.
func (svc *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error) {
	bookings, err := svc.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return scheduling.FilterBookings(bookings, filter), nil
}

// UpdateBooking applies the request's non-nil fields to a booking. Payment
// fields re-derive balance_due, which never goes negative.
func (svc *DefaultBookingService) UpdateBooking(ctx context.Context, id string, req models.UpdateBookingRequest) (*models.Booking, error) {
	booking, err := svc.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	prevProvider := booking.ProviderID

	if req.Title != nil {
		booking.Title = *req.Title
	}
	if req.Description != nil {
		booking.Description = *req.Description
	}
	if req.CustomerName != nil {
		booking.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		booking.CustomerEmail = *req.CustomerEmail
	}
	if req.GuestCount != nil {
		booking.GuestCount = *req.GuestCount
	}
	if req.ProviderID != nil {
		booking.ProviderID = *req.ProviderID
	}
	if req.ProviderName != nil {
		booking.ProviderName = *req.ProviderName
	}
	if req.PaymentStatus != nil {
		switch *req.PaymentStatus {
		case models.PaymentStatusUnpaid, models.PaymentStatusPartial, models.PaymentStatusPaid:
			booking.PaymentStatus = *req.PaymentStatus
		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidPayment, *req.PaymentStatus)
		}
	}
	if req.PaidAmount != nil {
		booking.PaidAmount = *req.PaidAmount
		booking.BalanceDue = booking.Price - booking.PaidAmount
		if booking.BalanceDue < 0 {
			booking.BalanceDue = 0
		}
		if req.PaymentStatus == nil {
			switch {
			case booking.PaidAmount >= booking.Price:
				booking.PaymentStatus = models.PaymentStatusPaid
			case booking.PaidAmount > 0:
				booking.PaymentStatus = models.PaymentStatusPartial
			default:
				booking.PaymentStatus = models.PaymentStatusUnpaid
			}
		}
	}

	if err := svc.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}
	svc.invalidateStatsCache(ctx, booking.ProviderID)
	if prevProvider != booking.ProviderID {
		svc.invalidateStatsCache(ctx, prevProvider)
	}
	return booking, nil
}

// DeleteBooking removes a booking permanently. Cancel is the normal path;
// delete exists for operator cleanup.
func (svc *DefaultBookingService) DeleteBooking(ctx context.Context, id string) error {
	booking, err := svc.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if err := svc.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking %s: %w", id, err)
	}
	svc.invalidateStatsCache(ctx, booking.ProviderID)
	return nil
}

// overlappingBookings counts active bookings intersecting [start, end) for a
// provider, with both sides' buffers applied.
func (svc *DefaultBookingService) overlappingBookings(ctx context.Context, providerID string, start, end time.Time, bufferMinutes int) (int, error) {
	pad := time.Duration(bufferMinutes) * time.Minute
	existing, err := svc.Repo.GetByDateRange(ctx, providerID, start.Add(-24*time.Hour), end.Add(24*time.Hour))
	if err != nil {
		return 0, err
	}

	count := 0
	for _, b := range existing {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		busyStart := b.StartTime.Add(-time.Duration(b.BufferBeforeMinutes) * time.Minute)
		busyEnd := b.EndTime.Add(time.Duration(b.BufferAfterMinutes) * time.Minute)
		if start.Add(-pad).Before(busyEnd) && busyStart.Before(end.Add(pad)) {
			count++
		}
	}
	return count, nil
}
