package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"freeflow/models"
	"freeflow/services/booking"
)

// stubBookingService overrides just the operations a test exercises; the
// embedded interface panics on anything else.
type stubBookingService struct {
	booking.BookingService
	slots []models.TimeSlot
}

func (s *stubBookingService) GetAvailableSlots(ctx context.Context, providerID string, date time.Time, window models.SlotWindow) ([]models.TimeSlot, error) {
	return s.slots, nil
}

func newSlotsRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/bookings/slots", NewBookingHandler(svc).GetSlotsHandler)
	return r
}

func TestGetSlotsHandler_RejectsMalformedWindow(t *testing.T) {
	router := newSlotsRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots?date=2026-09-10&provider_id=prov-1&granularity=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for a non-numeric granularity", w.Code)
	}
}

func TestGetSlotsHandler_MissingDate(t *testing.T) {
	router := newSlotsRouter(&stubBookingService{})

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots?provider_id=prov-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 when date is missing", w.Code)
	}
}

func TestGetSlotsHandler_ValidWindow(t *testing.T) {
	stub := &stubBookingService{slots: []models.TimeSlot{{Time: "09:00", Available: true}}}
	router := newSlotsRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/bookings/slots?date=2026-09-10&provider_id=prov-1&start_hour=9&end_hour=12&granularity=30", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []models.TimeSlot
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Time != "09:00" {
		t.Errorf("body = %+v, want the stubbed slot grid", got)
	}
}
