package booking

import (
	"context"
	"time"

	availabilityRepo "freeflow/database/repository/availability"
	bookingRepo "freeflow/database/repository/booking"
	serviceTypeRepo "freeflow/database/repository/servicetype"
	"freeflow/models"
	"freeflow/services/mailer"
	"freeflow/services/scheduling"
)

// ReminderScheduler enqueues booking reminder and follow-up tasks for later
// delivery.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, payload models.ReminderPayload, processAt time.Time) error
}

// BookingService defines the booking lifecycle, the service catalogue and
// provider schedules, and the read models built on top of them.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter) ([]models.Booking, error)
	UpdateBooking(ctx context.Context, id string, req models.UpdateBookingRequest) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, id string) (*models.Booking, error)
	RescheduleBooking(ctx context.Context, id string, req models.RescheduleBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)
	CompleteBooking(ctx context.Context, id string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	SendReminder(ctx context.Context, id string) error

	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)
	CreateServiceType(ctx context.Context, st *models.ServiceType) (*models.ServiceType, error)
	UpdateServiceType(ctx context.Context, st *models.ServiceType) (*models.ServiceType, error)
	DeleteServiceType(ctx context.Context, id string) error

	GetAvailability(ctx context.Context, providerID string) (*models.ProviderAvailability, error)
	SetAvailability(ctx context.Context, av *models.ProviderAvailability) (*models.ProviderAvailability, error)
	AddTimeOff(ctx context.Context, providerID string, off models.TimeOff) (*models.ProviderAvailability, error)
	RemoveTimeOff(ctx context.Context, providerID, timeOffID string) (*models.ProviderAvailability, error)

	GetStats(ctx context.Context, providerID string) (*models.BookingStats, error)
	GetAvailableSlots(ctx context.Context, providerID string, date time.Time, window models.SlotWindow) ([]models.TimeSlot, error)
	GetCalendarView(ctx context.Context, providerID string, date time.Time, granularity scheduling.Granularity) (*models.CalendarView, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	Types        serviceTypeRepo.ServiceTypeRepository
	Availability availabilityRepo.AvailabilityRepository
	Mailer       mailer.Sender
	Scheduler    ReminderScheduler
	// ReminderLead is how long before the start time the reminder fires.
	ReminderLead time.Duration
}
