package models

import "time"

// CalendarDay is one day cell in a calendar view with its bookings.
type CalendarDay struct {
	Date     time.Time `json:"date"`
	Bookings []Booking `json:"bookings"`
}

// CalendarView is the server-rendered calendar for one navigation cursor.
type CalendarView struct {
	Cursor      time.Time     `json:"cursor"`
	Granularity string        `json:"granularity"`
	RangeStart  time.Time     `json:"range_start"`
	RangeEnd    time.Time     `json:"range_end"` // exclusive
	Days        []CalendarDay `json:"days"`
}
