package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// randomRef returns n uppercase hex characters for human-facing references.
func randomRef(n int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	if n > len(raw) {
		n = len(raw)
	}
	return raw[:n]
}

func newBookingNumber() string {
	return "BK-" + randomRef(8)
}

func newConfirmationCode() string {
	return "CONF-" + randomRef(6)
}

// parseStartTime combines the request's date ("YYYY-MM-DD") and time ("HH:MM")
// in the given IANA timezone. An empty or unknown timezone falls back to UTC.
func parseStartTime(date, clock, timezone string) (time.Time, error) {
	loc := time.UTC
	if timezone != "" {
		if parsed, err := time.LoadLocation(timezone); err == nil {
			loc = parsed
		}
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking time %q %q: %w", date, clock, err)
	}
	return start, nil
}
