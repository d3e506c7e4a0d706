package models

// ReminderPayload is the asynq task payload for booking reminder and
// follow-up emails.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Kind      string `json:"kind"` // "reminder" or "follow_up"
}

const (
	ReminderKindReminder = "reminder"
	ReminderKindFollowUp = "follow_up"
)
