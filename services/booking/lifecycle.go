package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/utils"
)

// ConfirmBooking moves a pending or rescheduled booking to confirmed, issues
// its confirmation code, emails the customer and schedules the pre-start
// reminder.
func (svc *DefaultBookingService) ConfirmBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := svc.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusPending && booking.Status != models.BookingStatusRescheduled {
		return nil, fmt.Errorf("%w: cannot confirm a %s booking", ErrInvalidTransition, booking.Status)
	}

	now := time.Now()
	booking.Status = models.BookingStatusConfirmed
	booking.ConfirmationCode = newConfirmationCode()
	booking.ConfirmedAt = &now
	if err := svc.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to confirm booking %s: %w", id, err)
	}
	svc.invalidateStatsCache(ctx, booking.ProviderID)

	logger := utils.GetLogger()
	if svc.Mailer != nil {
		body := fmt.Sprintf(
			"Hi %s,\n\nYour booking %s (%s) is confirmed for %s.\nConfirmation code: %s\n",
			booking.CustomerName, booking.BookingNumber, booking.Title,
			booking.StartTime.Format(time.RFC1123), booking.ConfirmationCode,
		)
		if err := svc.Mailer.Send(booking.CustomerEmail, "Booking confirmed: "+booking.BookingNumber, body); err != nil {
			logger.Warn("Confirmation email failed", zap.String("bookingId", id), zap.Error(err))
		} else if err := svc.Repo.SetLifecycleFlag(ctx, id, "confirmation_sent"); err != nil {
			logger.Warn("Failed to mark confirmation_sent", zap.String("bookingId", id), zap.Error(err))
		}
	}

	svc.scheduleReminder(ctx, booking)
	return booking, nil
}

// RescheduleBooking moves a booking to a new start, keeping its duration and
// re-deriving the end time. Completed and cancelled bookings cannot move.
func (svc *DefaultBookingService) RescheduleBooking(ctx context.Context, id string, req models.RescheduleBookingRequest) (*models.Booking, error) {
	booking, err := svc.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCompleted || booking.Status == models.BookingStatusCancelled {
		return nil, fmt.Errorf("%w: cannot reschedule a %s booking", ErrInvalidTransition, booking.Status)
	}

	start, err := parseStartTime(req.Date, req.Time, booking.Timezone)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(booking.DurationMinutes) * time.Minute)

	booking.StartTime = start
	booking.EndTime = end
	booking.Status = models.BookingStatusRescheduled
	booking.ReminderSent = false
	if err := svc.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to reschedule booking %s: %w", id, err)
	}
	svc.invalidateStatsCache(ctx, booking.ProviderID)

	utils.GetLogger().Info("Booking rescheduled",
		zap.String("bookingId", id), zap.Time("newStart", start))
	return booking, nil
}

// CancelBooking marks a booking cancelled with an optional reason. Cancelling
// twice is a no-op on the second call's side effects.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	booking, err := svc.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCancelled {
		return booking, nil
	}
	if booking.Status == models.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: cannot cancel a completed booking", ErrInvalidTransition)
	}

	now := time.Now()
	booking.Status = models.BookingStatusCancelled
	booking.CancelledAt = &now
	booking.CancellationReason = reason
	if err := svc.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	svc.invalidateStatsCache(ctx, booking.ProviderID)

	utils.GetLogger().Info("Booking cancelled",
		zap.String("bookingId", id), zap.String("reason", reason))
	return booking, nil
}

// CompleteBooking closes out a confirmed booking and queues the follow-up
// email.
func (svc *DefaultBookingService) CompleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := svc.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingStatusConfirmed && booking.Status != models.BookingStatusRescheduled {
		return nil, fmt.Errorf("%w: cannot complete a %s booking", ErrInvalidTransition, booking.Status)
	}

	booking.Status = models.BookingStatusCompleted
	if err := svc.Repo.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to complete booking %s: %w", id, err)
	}
	svc.invalidateStatsCache(ctx, booking.ProviderID)

	if svc.Scheduler != nil {
		payload := models.ReminderPayload{BookingID: booking.ID, Kind: models.ReminderKindFollowUp}
		if err := svc.Scheduler.ScheduleReminder(ctx, payload, time.Now().Add(time.Hour)); err != nil {
			utils.GetLogger().Warn("Failed to queue follow-up", zap.String("bookingId", id), zap.Error(err))
		}
	}
	return booking, nil
}

// SendReminder queues an immediate reminder for a booking, regardless of the
// scheduled lead time. The worker still skips it if one already went out.
func (svc *DefaultBookingService) SendReminder(ctx context.Context, id string) error {
	booking, err := svc.GetBooking(ctx, id)
	if err != nil {
		return err
	}
	if booking.Status == models.BookingStatusCancelled || booking.Status == models.BookingStatusCompleted {
		return fmt.Errorf("%w: cannot remind a %s booking", ErrInvalidTransition, booking.Status)
	}
	if svc.Scheduler == nil {
		return nil
	}
	payload := models.ReminderPayload{BookingID: booking.ID, Kind: models.ReminderKindReminder}
	if err := svc.Scheduler.ScheduleReminder(ctx, payload, time.Now()); err != nil {
		return fmt.Errorf("failed to queue reminder for booking %s: %w", id, err)
	}
	return nil
}

func (svc *DefaultBookingService) scheduleReminder(ctx context.Context, booking *models.Booking) {
	if svc.Scheduler == nil {
		return
	}
	lead := svc.ReminderLead
	if lead <= 0 {
		lead = 2 * time.Hour
	}
	fireAt := booking.StartTime.Add(-lead)
	if fireAt.Before(time.Now()) {
		// Inside the lead window already; let the sweep worker pick it up.
		return
	}
	payload := models.ReminderPayload{BookingID: booking.ID, Kind: models.ReminderKindReminder}
	if err := svc.Scheduler.ScheduleReminder(ctx, payload, fireAt); err != nil {
		utils.GetLogger().Warn("Failed to queue reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
