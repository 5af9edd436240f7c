package db_models

import (
	"time"

	"github.com/google/uuid"
)

type TripStatus string

const (
	TripStatusDraft     TripStatus = "draft"
	TripStatusConfirmed TripStatus = "confirmed"
	TripStatusCompleted TripStatus = "completed"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Duration    int
	Status      TripStatus `gorm:"type:varchar(16);default:'draft'"`

	Days []DayItinerary `gorm:"foreignKey:TripID"`
}
