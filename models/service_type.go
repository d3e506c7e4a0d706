package models

import "time"

// ServiceType is a bookable offering: a named session with a fixed duration,
// price and buffer padding on both sides.
type ServiceType struct {
	ID            string  `bson:"id" json:"id"`
	Name          string  `bson:"name" json:"name"`
	Description   string  `bson:"description" json:"description"`
	Category      string  `bson:"category" json:"category"`
	Duration      int     `bson:"duration" json:"duration"` // minutes
	Price         float64 `bson:"price" json:"price"`
	BufferMinutes int     `bson:"buffer_minutes" json:"buffer_minutes"`
	MaxCapacity   int     `bson:"max_capacity" json:"max_capacity"`
	Color         string  `bson:"color" json:"color"`
	Active        bool    `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
