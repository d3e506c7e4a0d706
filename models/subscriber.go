package models

import "time"

// Subscriber status enum values. New signups are pending until the
// double-opt-in confirmation link is followed.
const (
	SubscriberStatusPending      = "pending"
	SubscriberStatusSubscribed   = "subscribed"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

// Subscriber is a newsletter signup. The confirmation token is kept in Redis
// with a TTL, not on the record.
type Subscriber struct {
	ID             string     `bson:"id" json:"id"`
	Email          string     `bson:"email" json:"email"`
	Status         string     `bson:"status" json:"status"`
	Source         string     `bson:"source,omitempty" json:"source,omitempty"` // e.g. "landing-page", "footer"
	SubscribedAt   *time.Time `bson:"subscribed_at,omitempty" json:"subscribed_at,omitempty"`
	UnsubscribedAt *time.Time `bson:"unsubscribed_at,omitempty" json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}

// NewsletterStats is the audience summary for the newsletter dashboard.
type NewsletterStats struct {
	Total        int64 `json:"total"`
	Pending      int64 `json:"pending"`
	Subscribed   int64 `json:"subscribed"`
	Unsubscribed int64 `json:"unsubscribed"`
}
