package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserPreference is the full travel-preference document, one row per user.
type UserPreference struct {
	BaseModel
	UserID uuid.UUID `gorm:"uniqueIndex"`

	FoodPreferences           pq.StringArray `gorm:"type:text[]"`
	BudgetRange               string         // low | medium | high | luxury
	PlaceTypes                pq.StringArray `gorm:"type:text[]"`
	Activities                pq.StringArray `gorm:"type:text[]"`
	AccommodationType         pq.StringArray `gorm:"type:text[]"`
	TransportationPreference  pq.StringArray `gorm:"type:text[]"`
	AdventureLevel            string         // low | medium | high
	DietaryRestrictions       pq.StringArray `gorm:"type:text[]"`
	AccessibilityRequirements pq.StringArray `gorm:"type:text[]"`
	WeatherComfort            string         // cold | warm | hot
	GroupSize                 string         // solo | couple | family | friends
	LanguagesSpoken           pq.StringArray `gorm:"type:text[]"`
	TravelPace                string         // relaxed | moderate | packed
}
