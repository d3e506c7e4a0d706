package models

import "time"

// TimeOff blocks a span of time from booking, e.g. vacation or maintenance.
// The range is half-open: [Start, End).
type TimeOff struct {
	ID     string    `bson:"id" json:"id"`
	Start  time.Time `bson:"start" json:"start"`
	End    time.Time `bson:"end" json:"end"`
	Reason string    `bson:"reason,omitempty" json:"reason,omitempty"`
}

// ProviderAvailability is a provider's persisted booking schedule: the
// business-hours window slots are generated from, the weekdays they work,
// and any time off.
type ProviderAvailability struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"provider_id" json:"provider_id"`
	Timezone   string `bson:"timezone,omitempty" json:"timezone,omitempty"`

	Window SlotWindow `bson:"window" json:"window"`
	// WorkingDays holds lowercase weekday names ("monday"..."sunday").
	WorkingDays []string  `bson:"working_days" json:"working_days"`
	TimeOff     []TimeOff `bson:"time_off" json:"time_off"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultAvailability returns the standard Monday-to-Friday 09:00-17:00
// schedule used until a provider saves their own.
func DefaultAvailability(providerID string) *ProviderAvailability {
	return &ProviderAvailability{
		ProviderID:  providerID,
		Window:      DefaultSlotWindow(),
		WorkingDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		TimeOff:     []TimeOff{},
	}
}

// WorksOn reports whether the schedule covers the given date's weekday.
// An empty WorkingDays list means every day.
func (a *ProviderAvailability) WorksOn(date time.Time) bool {
	if len(a.WorkingDays) == 0 {
		return true
	}
	day := dayName(date.Weekday())
	for _, d := range a.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// OffDuring reports whether any time-off entry overlaps [start, end).
func (a *ProviderAvailability) OffDuring(start, end time.Time) bool {
	for _, off := range a.TimeOff {
		if start.Before(off.End) && off.Start.Before(end) {
			return true
		}
	}
	return false
}

func dayName(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
