package db_models

import (
	"time"

	"github.com/google/uuid"
)

// DayItinerary is one calendar day of a trip. It owns its activities and
// meals; they are created with it and have no independent lifecycle.
type DayItinerary struct {
	BaseModel
	TripID        uuid.UUID
	DayNumber     int
	Date          time.Time
	Accommodation string

	Activities []Activity `gorm:"foreignKey:DayItineraryID"`
	Meals      []Meal     `gorm:"foreignKey:DayItineraryID"`
}

type Activity struct {
	BaseModel
	DayItineraryID uuid.UUID
	Name           string
	Description    string
	Location       string
	// Duration is in minutes.
	Duration  int
	Cost      float64
	Category  string
	Latitude  *float64
	Longitude *float64
}

type Meal struct {
	BaseModel
	DayItineraryID uuid.UUID
	// MealType is one of breakfast, lunch, dinner, snack. Persisted as the
	// model returned it; the schema owns stricter enforcement.
	MealType   string
	Restaurant string
	Cuisine    string
	Cost       float64
	Location   string
}
