package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"freeflow/models"
	"freeflow/services/booking"
	"freeflow/services/scheduling"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrSlotUnavailable):
		return http.StatusConflict
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrUnknownServiceType),
		errors.Is(err, booking.ErrInvalidTimeRange),
		errors.Is(err, booking.ErrInvalidPayment),
		errors.Is(err, booking.ErrInvalidServiceType),
		errors.Is(err, booking.ErrInvalidSchedule):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CreateBookingHandler creates a booking from a slot request.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookingsHandler returns bookings narrowed by query parameters.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	var filter models.BookingFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	bookings, err := h.Svc.ListBookings(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler returns one booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingHandler applies partial edits to a booking's details.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var req models.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Svc.UpdateBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmBookingHandler confirms a pending booking.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	b, err := h.Svc.ConfirmBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		logger.Error("Failed to confirm booking", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// RescheduleBookingHandler moves a booking to a new slot.
func (h *BookingHandler) RescheduleBookingHandler(c *gin.Context) {
	var req models.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Svc.RescheduleBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler cancels a booking with an optional reason.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var req models.CancelBookingRequest
	// The body is optional; a bare cancel carries no reason.
	_ = c.ShouldBindJSON(&req)

	b, err := h.Svc.CancelBooking(c.Request.Context(), c.Param("id"), req.Reason)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBookingHandler closes out a confirmed booking.
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	b, err := h.Svc.CompleteBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, b)
}

// SendReminderHandler queues an immediate reminder for a booking.
func (h *BookingHandler) SendReminderHandler(c *gin.Context) {
	if err := h.Svc.SendReminder(c.Request.Context(), c.Param("id")); err != nil {
		getLogger(c).Error("Failed to queue reminder", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// DeleteBookingHandler removes a booking permanently.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Svc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetBookingStatsHandler returns the dashboard metrics.
func (h *BookingHandler) GetBookingStatsHandler(c *gin.Context) {
	logger := getLogger(c)

	stats, err := h.Svc.GetStats(c.Request.Context(), c.Query("provider_id"))
	if err != nil {
		logger.Error("Failed to compute booking stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetSlotsHandler returns the slot grid for a provider-day.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	var window models.SlotWindow
	// Window overrides are optional; zero means the provider's business hours.
	if err := c.ShouldBindQuery(&window); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid window: " + err.Error()})
		return
	}

	slots, err := h.Svc.GetAvailableSlots(c.Request.Context(), c.Query("provider_id"), date, window)
	if err != nil {
		getLogger(c).Error("Failed to build slot grid", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build slot grid"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetCalendarHandler returns the calendar view around a cursor date.
func (h *BookingHandler) GetCalendarHandler(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	granularity := scheduling.Granularity(c.DefaultQuery("granularity", string(scheduling.GranularityWeek)))
	switch granularity {
	case scheduling.GranularityDay, scheduling.GranularityWeek, scheduling.GranularityMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "granularity must be day, week or month"})
		return
	}

	view, err := h.Svc.GetCalendarView(c.Request.Context(), c.Query("provider_id"), date, granularity)
	if err != nil {
		getLogger(c).Error("Failed to build calendar view", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar view"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetServiceTypesHandler returns the bookable service catalogue.
func (h *BookingHandler) GetServiceTypesHandler(c *gin.Context) {
	types, err := h.Svc.ListServiceTypes(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to list service types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list service types"})
		return
	}
	c.JSON(http.StatusOK, types)
}

// CreateServiceTypeHandler adds a service to the catalogue.
func (h *BookingHandler) CreateServiceTypeHandler(c *gin.Context) {
	var st models.ServiceType
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Svc.CreateServiceType(c.Request.Context(), &st)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceTypeHandler replaces a catalogue entry.
func (h *BookingHandler) UpdateServiceTypeHandler(c *gin.Context) {
	var st models.ServiceType
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	st.ID = c.Param("typeId")

	updated, err := h.Svc.UpdateServiceType(c.Request.Context(), &st)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceTypeHandler removes a catalogue entry.
func (h *BookingHandler) DeleteServiceTypeHandler(c *gin.Context) {
	if err := h.Svc.DeleteServiceType(c.Request.Context(), c.Param("typeId")); err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetAvailabilityHandler returns a provider's schedule, falling back to the
// default business hours when none is saved.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	av, err := h.Svc.GetAvailability(c.Request.Context(), c.Query("provider_id"))
	if err != nil {
		getLogger(c).Error("Failed to load availability", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load availability"})
		return
	}
	c.JSON(http.StatusOK, av)
}

// SetAvailabilityHandler saves a provider's schedule.
func (h *BookingHandler) SetAvailabilityHandler(c *gin.Context) {
	var av models.ProviderAvailability
	if err := c.ShouldBindJSON(&av); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	saved, err := h.Svc.SetAvailability(c.Request.Context(), &av)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// AddTimeOffHandler blocks out an interval on a provider's schedule.
func (h *BookingHandler) AddTimeOffHandler(c *gin.Context) {
	var req struct {
		ProviderID string         `json:"providerId" binding:"required"`
		TimeOff    models.TimeOff `json:"timeOff"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	av, err := h.Svc.AddTimeOff(c.Request.Context(), req.ProviderID, req.TimeOff)
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, av)
}

// RemoveTimeOffHandler lifts a time-off block.
func (h *BookingHandler) RemoveTimeOffHandler(c *gin.Context) {
	av, err := h.Svc.RemoveTimeOff(c.Request.Context(), c.Query("provider_id"), c.Param("timeOffId"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, av)
}
