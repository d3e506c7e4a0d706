package scheduling

import "time"

// Granularity selects the step size for calendar navigation.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// Navigator holds a calendar cursor and moves it by whole days, weeks or
// months. Switching granularity never moves the cursor.
type Navigator struct {
	cursor      time.Time
	granularity Granularity
	loc         *time.Location
}

func NewNavigator(start time.Time, granularity Granularity, loc *time.Location) *Navigator {
	if loc == nil {
		loc = time.Local
	}
	return &Navigator{
		cursor:      start.In(loc),
		granularity: granularity,
		loc:         loc,
	}
}

func (n *Navigator) Cursor() time.Time          { return n.cursor }
func (n *Navigator) Granularity() Granularity   { return n.granularity }
func (n *Navigator) SetGranularity(g Granularity) { n.granularity = g }

// Next advances the cursor one step forward at the current granularity.
func (n *Navigator) Next() time.Time {
	n.cursor = Navigate(n.cursor, n.granularity, 1)
	return n.cursor
}

// Prev moves the cursor one step back at the current granularity.
func (n *Navigator) Prev() time.Time {
	n.cursor = Navigate(n.cursor, n.granularity, -1)
	return n.cursor
}

// Today resets the cursor to the current instant in the navigator's location.
func (n *Navigator) Today() time.Time {
	n.cursor = time.Now().In(n.loc)
	return n.cursor
}

// Navigate returns date moved step units at the given granularity. Month
// steps clamp to the target month's length, so the 31st never spills into
// the following month.
func Navigate(date time.Time, granularity Granularity, step int) time.Time {
	switch granularity {
	case GranularityWeek:
		return date.AddDate(0, 0, 7*step)
	case GranularityMonth:
		return addMonths(date, step)
	default:
		return date.AddDate(0, 0, step)
	}
}

func addMonths(date time.Time, months int) time.Time {
	// Anchor on the 1st so AddDate cannot overflow into the month after
	// the target, then clamp the day-of-month back in.
	year, month, day := date.Date()
	hour, min, sec := date.Clock()
	anchor := time.Date(year, month, 1, hour, min, sec, date.Nanosecond(), date.Location())
	anchor = anchor.AddDate(0, months, 0)

	maxDay := daysInMonth(anchor.Year(), anchor.Month())
	if day > maxDay {
		day = maxDay
	}
	return time.Date(anchor.Year(), anchor.Month(), day, hour, min, sec, date.Nanosecond(), date.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekStart returns midnight on the Sunday at or before date. Applying it to
// its own result is a no-op.
func WeekStart(date time.Time) time.Time {
	year, month, day := date.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, date.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// WeekDays returns the seven consecutive days of date's week, Sunday first.
func WeekDays(date time.Time) []time.Time {
	start := WeekStart(date)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}
