package models

import "time"

// Review status enum values. New reviews land as pending until moderated.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusFlagged  = "flagged"
	ReviewStatusHidden   = "hidden"
)

// Review is buyer feedback on a marketplace listing. Only approved reviews
// contribute to the listing's rating roll-up.
type Review struct {
	ID          string    `bson:"id" json:"id"`
	ListingID   string    `bson:"listing_id" json:"listing_id"`
	AuthorName  string    `bson:"author_name" json:"author_name"`
	AuthorEmail string    `bson:"author_email,omitempty" json:"author_email,omitempty"`
	Rating      int       `bson:"rating" json:"rating"` // 1..5
	Title       string    `bson:"title" json:"title"`
	Content     string    `bson:"content" json:"content"`
	Helpful     int       `bson:"helpful" json:"helpful"`
	NotHelpful  int       `bson:"not_helpful" json:"not_helpful"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
