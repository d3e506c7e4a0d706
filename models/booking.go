package models

import "time"

// Booking type enum values.
const (
	BookingTypeAppointment  = "appointment"
	BookingTypeClass        = "class"
	BookingTypeConsultation = "consultation"
	BookingTypeRental       = "rental"
	BookingTypeEvent        = "event"
)

// Booking status enum values. Lifecycle transitions are enforced by the
// booking service; everything else only observes them.
const (
	BookingStatusPending     = "pending"
	BookingStatusConfirmed   = "confirmed"
	BookingStatusRescheduled = "rescheduled"
	BookingStatusCompleted   = "completed"
	BookingStatusCancelled   = "cancelled"
)

// Payment status enum values. Payments themselves are settled outside this
// system; these reflect what the upstream processor reported.
const (
	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// Booking represents a scheduled engagement between a customer and a provider.
type Booking struct {
	ID            string `bson:"id" json:"id"`
	BookingNumber string `bson:"booking_number" json:"booking_number"` // human-readable, e.g. "BK-M3X9QW"
	Title         string `bson:"title" json:"title"`
	Description   string `bson:"description,omitempty" json:"description,omitempty"`
	BookingType   string `bson:"booking_type" json:"booking_type"`

	CustomerName  string `bson:"customer_name" json:"customer_name"`
	CustomerEmail string `bson:"customer_email" json:"customer_email"`
	GuestCount    int    `bson:"guest_count" json:"guest_count"`

	// Provider assignment is optional; empty means unassigned (round-robin pending).
	ProviderID   string `bson:"provider_id,omitempty" json:"provider_id,omitempty"`
	ProviderName string `bson:"provider_name,omitempty" json:"provider_name,omitempty"`

	ServiceID   string `bson:"service_id,omitempty" json:"service_id,omitempty"`
	ServiceName string `bson:"service_name,omitempty" json:"service_name,omitempty"`

	StartTime           time.Time `bson:"start_time" json:"start_time"`
	EndTime             time.Time `bson:"end_time" json:"end_time"`
	DurationMinutes     int       `bson:"duration_minutes" json:"duration_minutes"` // derived: end - start in minutes
	Timezone            string    `bson:"timezone" json:"timezone"`
	BufferBeforeMinutes int       `bson:"buffer_before_minutes" json:"buffer_before_minutes"`
	BufferAfterMinutes  int       `bson:"buffer_after_minutes" json:"buffer_after_minutes"`

	Status        string  `bson:"status" json:"status"`
	Price         float64 `bson:"price" json:"price"`
	DepositAmount float64 `bson:"deposit_amount" json:"deposit_amount"`
	PaidAmount    float64 `bson:"paid_amount" json:"paid_amount"`
	BalanceDue    float64 `bson:"balance_due" json:"balance_due"` // invariant: price - paid_amount, never negative
	Currency      string  `bson:"currency" json:"currency"`
	PaymentStatus string  `bson:"payment_status" json:"payment_status"`

	Capacity    int    `bson:"capacity" json:"capacity"`
	SlotsBooked int    `bson:"slots_booked" json:"slots_booked"`
	IsRecurring bool   `bson:"is_recurring" json:"is_recurring"`
	MeetingURL  string `bson:"meeting_url,omitempty" json:"meeting_url,omitempty"`

	// Lifecycle flags only ever move false -> true.
	ReminderSent     bool `bson:"reminder_sent" json:"reminder_sent"`
	ConfirmationSent bool `bson:"confirmation_sent" json:"confirmation_sent"`
	FollowUpSent     bool `bson:"follow_up_sent" json:"follow_up_sent"`

	ConfirmationCode   string     `bson:"confirmation_code,omitempty" json:"confirmation_code,omitempty"`
	ConfirmedAt        *time.Time `bson:"confirmed_at,omitempty" json:"confirmed_at,omitempty"`
	CancelledAt        *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CancellationReason string     `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// BookingStats holds the derived metrics shown on the bookings dashboard.
// Rates carry both the raw ratio and a one-decimal display string.
type BookingStats struct {
	Total           int     `json:"total"`
	Confirmed       int     `json:"confirmed"`
	Pending         int     `json:"pending"`
	Completed       int     `json:"completed"`
	Cancelled       int     `json:"cancelled"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PaidRevenue     float64 `json:"paidRevenue"`
	PendingPayments float64 `json:"pendingPayments"`
	AvgDuration     int     `json:"avgDuration"` // minutes, rounded
	NoShowRate      string  `json:"noShowRate"`
	ConversionRate  string  `json:"conversionRate"`
	NoShowRatio     float64 `json:"-"`
	ConversionRatio float64 `json:"-"`
}

// BookingFilter narrows an already-fetched booking list. Zero values and
// "all" are no-op predicates; the predicates are independent and ANDed.
type BookingFilter struct {
	Query         string `form:"q" json:"q"`
	BookingType   string `form:"type" json:"type"`
	Status        string `form:"status" json:"status"`
	PaymentStatus string `form:"payment_status" json:"payment_status"`
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	ServiceTypeID string `json:"serviceTypeId" binding:"required"`
	ProviderID    string `json:"providerId"`
	ProviderName  string `json:"providerName"`
	Date          string `json:"date" binding:"required"` // "YYYY-MM-DD"
	Time          string `json:"time" binding:"required"` // "HH:MM"
	Timezone      string `json:"timezone"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail" binding:"required,email"`
	GuestCount    int    `json:"guestCount"`
	AddVideoLink  bool   `json:"addVideoLink"`
	Notes         string `json:"notes"`
}

// UpdateBookingRequest applies partial edits to a booking's details. Nil
// fields are left unchanged. Schedule and status changes go through the
// dedicated reschedule/confirm/cancel/complete operations instead.
type UpdateBookingRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	CustomerName  *string  `json:"customerName"`
	CustomerEmail *string  `json:"customerEmail"`
	GuestCount    *int     `json:"guestCount"`
	ProviderID    *string  `json:"providerId"`
	ProviderName  *string  `json:"providerName"`
	PaidAmount    *float64 `json:"paidAmount"`
	PaymentStatus *string  `json:"paymentStatus"`
}

// RescheduleBookingRequest moves a booking to a new start; the duration is
// preserved and the end time re-derived.
type RescheduleBookingRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// CancelBookingRequest carries the optional cancellation reason.
type CancelBookingRequest struct {
	Reason string `json:"reason"`
}
