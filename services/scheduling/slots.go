package scheduling

import (
	"time"

	"freeflow/models"
)

// busyInterval is a booking's occupied range expanded by its buffers.
type busyInterval struct {
	start time.Time
	end   time.Time
}

// GenerateTimeSlots produces the ordered slot grid for one day: every
// granularity-aligned instant from the window's start hour (inclusive) up to
// the closing hour (exclusive). A slot is available while fewer than
// window.Capacity bookings overlap it; each booking's interval is expanded by
// its before/after buffers, and cancelled bookings never block.
//
// Output is deterministic for fixed inputs. A window whose end hour is at or
// before its start hour yields an empty grid, not an error.
func GenerateTimeSlots(window models.SlotWindow, date time.Time, bookings []models.Booking) []models.TimeSlot {
	slots := []models.TimeSlot{}
	if window.EndHour <= window.StartHour {
		return slots
	}
	granularity := window.GranularityMinutes
	if granularity <= 0 {
		granularity = 30
	}
	capacity := window.Capacity
	if capacity <= 0 {
		capacity = 1
	}

	year, month, day := date.Date()
	open := time.Date(year, month, day, window.StartHour, 0, 0, 0, date.Location())
	closing := time.Date(year, month, day, window.EndHour, 0, 0, 0, date.Location())

	busy := busyIntervals(bookings)

	step := time.Duration(granularity) * time.Minute
	for t := open; t.Before(closing); t = t.Add(step) {
		count := overlapCount(t, t.Add(step), busy)
		slots = append(slots, models.TimeSlot{
			Time:      t.Format("15:04"),
			Available: count < capacity,
			Bookings:  count,
		})
	}
	return slots
}

func busyIntervals(bookings []models.Booking) []busyInterval {
	var busy []busyInterval
	for _, b := range bookings {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		if b.StartTime.IsZero() || !b.EndTime.After(b.StartTime) {
			continue
		}
		busy = append(busy, busyInterval{
			start: b.StartTime.Add(-time.Duration(b.BufferBeforeMinutes) * time.Minute),
			end:   b.EndTime.Add(time.Duration(b.BufferAfterMinutes) * time.Minute),
		})
	}
	return busy
}

// overlapCount counts busy intervals intersecting the half-open slot
// [start, end): they overlap iff start < b.end && b.start < end.
func overlapCount(start, end time.Time, busy []busyInterval) int {
	count := 0
	for _, b := range busy {
		if start.Before(b.end) && b.start.Before(end) {
			count++
		}
	}
	return count
}
