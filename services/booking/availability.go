package booking

import (
	"context"
	"fmt"
	"time"

	"freeflow/models"
	"freeflow/services/scheduling"
)

// GetAvailableSlots returns the slot grid for one provider-day. A zero window
// falls back to the provider's configured business hours; days the provider
// does not work yield an empty grid, and slots inside time-off are marked
// unavailable.
func (svc *DefaultBookingService) GetAvailableSlots(ctx context.Context, providerID string, date time.Time, window models.SlotWindow) ([]models.TimeSlot, error) {
	sched, err := svc.providerSchedule(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if !sched.WorksOn(date) {
		return []models.TimeSlot{}, nil
	}
	if window == (models.SlotWindow{}) {
		window = sched.Window
	}
	if window == (models.SlotWindow{}) {
		window = models.DefaultSlotWindow()
	}

	year, month, day := date.Date()
	dayStart := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	// Fetch with a day of slack on each side so buffers spilling across
	// midnight still count against the grid.
	bookings, err := svc.Repo.GetByDateRange(ctx, providerID, dayStart.Add(-24*time.Hour), dayEnd.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for slot grid: %w", err)
	}
	slots := scheduling.GenerateTimeSlots(window, date, bookings)
	step := time.Duration(window.GranularityMinutes) * time.Minute
	if step <= 0 {
		step = 30 * time.Minute
	}
	for i := range slots {
		if !slots[i].Available {
			continue
		}
		clock, err := time.ParseInLocation("15:04", slots[i].Time, date.Location())
		if err != nil {
			continue
		}
		start := dayStart.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute)
		if sched.OffDuring(start, start.Add(step)) {
			slots[i].Available = false
		}
	}
	return slots, nil
}

// GetCalendarView assembles the day cells for the period containing date at
// the given granularity: one day, the Sunday-first week, or the whole month.
func (svc *DefaultBookingService) GetCalendarView(ctx context.Context, providerID string, date time.Time, granularity scheduling.Granularity) (*models.CalendarView, error) {
	var days []time.Time
	switch granularity {
	case scheduling.GranularityWeek:
		days = scheduling.WeekDays(date)
	case scheduling.GranularityMonth:
		year, month, _ := date.Date()
		first := time.Date(year, month, 1, 0, 0, 0, 0, date.Location())
		next := first.AddDate(0, 1, 0)
		for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
			days = append(days, d)
		}
	default:
		granularity = scheduling.GranularityDay
		year, month, day := date.Date()
		days = []time.Time{time.Date(year, month, day, 0, 0, 0, 0, date.Location())}
	}

	rangeStart := days[0]
	rangeEnd := days[len(days)-1].AddDate(0, 0, 1)
	bookings, err := svc.Repo.GetByDateRange(ctx, providerID, rangeStart, rangeEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for calendar view: %w", err)
	}

	view := &models.CalendarView{
		Cursor:      date,
		Granularity: string(granularity),
		RangeStart:  rangeStart,
		RangeEnd:    rangeEnd,
		Days:        make([]models.CalendarDay, len(days)),
	}
	for i, d := range days {
		cell := models.CalendarDay{Date: d, Bookings: []models.Booking{}}
		cellEnd := d.AddDate(0, 0, 1)
		for _, b := range bookings {
			if b.StartTime.Before(cellEnd) && d.Before(b.EndTime) {
				cell.Bookings = append(cell.Bookings, b)
			}
		}
		view.Days[i] = cell
	}
	return view, nil
}
