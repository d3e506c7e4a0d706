package models

// TimeSlot is one bookable interval within a day's business-hours window.
// Slots are ephemeral: regenerated on every date change, never persisted.
type TimeSlot struct {
	Time      string `json:"time"` // "HH:MM", start of the slot
	Available bool   `json:"available"`
	Bookings  int    `json:"bookings"` // bookings overlapping this slot
}

// SlotWindow describes the business-hours window slots are generated for.
type SlotWindow struct {
	StartHour          int `form:"start_hour" json:"startHour"`
	EndHour            int `form:"end_hour" json:"endHour"`
	GranularityMinutes int `form:"granularity" json:"granularityMinutes"`
	// Capacity is the number of concurrent bookings a slot absorbs before it
	// stops being available. 1 models a single-provider calendar.
	Capacity int `form:"capacity" json:"capacity"`
}

// DefaultSlotWindow returns the standard 09:00-17:00 window with 30-minute
// slots for a single provider.
func DefaultSlotWindow() SlotWindow {
	return SlotWindow{StartHour: 9, EndHour: 17, GranularityMinutes: 30, Capacity: 1}
}
