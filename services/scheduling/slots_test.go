package scheduling

import (
	"testing"
	"time"

	"freeflow/models"
)

func day(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
}

func booking(start, end time.Time, status string, bufBefore, bufAfter int) models.Booking {
	return models.Booking{
		StartTime:           start,
		EndTime:             end,
		Status:              status,
		BufferBeforeMinutes: bufBefore,
		BufferAfterMinutes:  bufAfter,
	}
}

func TestGenerateTimeSlots_GridShape(t *testing.T) {
	tests := []struct {
		name      string
		window    models.SlotWindow
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{"default window", models.DefaultSlotWindow(), 16, "09:00", "16:30"},
		{"hourly morning", models.SlotWindow{StartHour: 8, EndHour: 12, GranularityMinutes: 60, Capacity: 1}, 4, "08:00", "11:00"},
		{"quarter hour", models.SlotWindow{StartHour: 9, EndHour: 10, GranularityMinutes: 15, Capacity: 1}, 4, "09:00", "09:45"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots := GenerateTimeSlots(tc.window, day(t), nil)
			if len(slots) != tc.wantCount {
				t.Fatalf("got %d slots, want %d", len(slots), tc.wantCount)
			}
			if slots[0].Time != tc.wantFirst {
				t.Errorf("first slot %q, want %q", slots[0].Time, tc.wantFirst)
			}
			if slots[len(slots)-1].Time != tc.wantLast {
				t.Errorf("last slot %q, want %q", slots[len(slots)-1].Time, tc.wantLast)
			}
			for i := 1; i < len(slots); i++ {
				if slots[i].Time <= slots[i-1].Time {
					t.Fatalf("slots not strictly increasing at %d: %q then %q", i, slots[i-1].Time, slots[i].Time)
				}
			}
		})
	}
}

func TestGenerateTimeSlots_EmptyWindow(t *testing.T) {
	inverted := models.SlotWindow{StartHour: 17, EndHour: 9, GranularityMinutes: 30, Capacity: 1}
	if got := GenerateTimeSlots(inverted, day(t), nil); len(got) != 0 {
		t.Errorf("inverted window: got %d slots, want 0", len(got))
	}
	zero := models.SlotWindow{StartHour: 9, EndHour: 9, GranularityMinutes: 30, Capacity: 1}
	if got := GenerateTimeSlots(zero, day(t), nil); len(got) != 0 {
		t.Errorf("zero-width window: got %d slots, want 0", len(got))
	}
}

func TestGenerateTimeSlots_AvailabilityFromBookings(t *testing.T) {
	d := day(t)
	bookings := []models.Booking{
		booking(d.Add(10*time.Hour), d.Add(11*time.Hour), models.BookingStatusConfirmed, 0, 0),
	}
	slots := GenerateTimeSlots(models.DefaultSlotWindow(), d, bookings)

	byTime := map[string]models.TimeSlot{}
	for _, s := range slots {
		byTime[s.Time] = s
	}

	for _, blocked := range []string{"10:00", "10:30"} {
		s := byTime[blocked]
		if s.Available {
			t.Errorf("slot %s should be blocked", blocked)
		}
		if s.Bookings != 1 {
			t.Errorf("slot %s bookings = %d, want 1", blocked, s.Bookings)
		}
	}
	for _, free := range []string{"09:30", "11:00"} {
		if !byTime[free].Available {
			t.Errorf("slot %s should be free", free)
		}
	}
}

func TestGenerateTimeSlots_BuffersBlockAdjacentSlots(t *testing.T) {
	d := day(t)
	bookings := []models.Booking{
		booking(d.Add(10*time.Hour), d.Add(11*time.Hour), models.BookingStatusConfirmed, 15, 15),
	}
	slots := GenerateTimeSlots(models.DefaultSlotWindow(), d, bookings)

	byTime := map[string]models.TimeSlot{}
	for _, s := range slots {
		byTime[s.Time] = s
	}

	for _, blocked := range []string{"09:30", "10:00", "10:30", "11:00"} {
		if byTime[blocked].Available {
			t.Errorf("slot %s should be blocked by buffer", blocked)
		}
	}
	for _, free := range []string{"09:00", "11:30"} {
		if !byTime[free].Available {
			t.Errorf("slot %s should be free", free)
		}
	}
}

func TestGenerateTimeSlots_CancelledBookingsDoNotBlock(t *testing.T) {
	d := day(t)
	bookings := []models.Booking{
		booking(d.Add(10*time.Hour), d.Add(11*time.Hour), models.BookingStatusCancelled, 0, 0),
	}
	slots := GenerateTimeSlots(models.DefaultSlotWindow(), d, bookings)
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s blocked by a cancelled booking", s.Time)
		}
		if s.Bookings != 0 {
			t.Errorf("slot %s counts %d bookings, want 0", s.Time, s.Bookings)
		}
	}
}

func TestGenerateTimeSlots_CapacityAbsorbsOverlap(t *testing.T) {
	d := day(t)
	window := models.DefaultSlotWindow()
	window.Capacity = 3
	bookings := []models.Booking{
		booking(d.Add(10*time.Hour), d.Add(10*time.Hour+30*time.Minute), models.BookingStatusConfirmed, 0, 0),
		booking(d.Add(10*time.Hour), d.Add(10*time.Hour+30*time.Minute), models.BookingStatusConfirmed, 0, 0),
	}
	slots := GenerateTimeSlots(window, d, bookings)
	for _, s := range slots {
		if s.Time != "10:00" {
			continue
		}
		if !s.Available {
			t.Error("slot 10:00 should stay available below capacity")
		}
		if s.Bookings != 2 {
			t.Errorf("slot 10:00 bookings = %d, want 2", s.Bookings)
		}
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	d := day(t)
	bookings := []models.Booking{
		booking(d.Add(10*time.Hour), d.Add(11*time.Hour), models.BookingStatusConfirmed, 0, 15),
		booking(d.Add(14*time.Hour), d.Add(15*time.Hour), models.BookingStatusPending, 0, 0),
	}
	first := GenerateTimeSlots(models.DefaultSlotWindow(), d, bookings)
	for i := 0; i < 10; i++ {
		again := GenerateTimeSlots(models.DefaultSlotWindow(), d, bookings)
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d slots, want %d", i, len(again), len(first))
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("run %d: slot %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}
