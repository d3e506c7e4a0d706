package booking

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUnknownServiceType = errors.New("unknown service type")
	ErrInvalidTimeRange   = errors.New("booking end must be after its start")
	ErrSlotUnavailable    = errors.New("requested slot is no longer available")
	ErrInvalidTransition  = errors.New("booking status does not allow this transition")
	ErrInvalidPayment     = errors.New("invalid payment status")
	ErrInvalidServiceType = errors.New("invalid service type")
	ErrInvalidSchedule    = errors.New("invalid availability schedule")
)
