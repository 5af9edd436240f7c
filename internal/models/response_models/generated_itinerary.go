package response_models

// GeneratedItinerary is the typed form of a model reply that survived
// validation. Nothing untyped crosses this boundary: either the reply parses
// into this shape or the pipeline fails with a malformed-response error.
type GeneratedItinerary struct {
	Days []GeneratedDay `json:"days"`
}

type GeneratedDay struct {
	DayNumber     int                 `json:"day_number"`
	Date          string              `json:"date"`
	Accommodation string              `json:"accommodation"`
	Activities    []GeneratedActivity `json:"activities"`
	Meals         []GeneratedMeal     `json:"meals"`
}

type GeneratedActivity struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	Duration    int          `json:"duration"`
	Cost        float64      `json:"cost"`
	Category    string       `json:"category"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type GeneratedMeal struct {
	MealType   string  `json:"meal_type"`
	Restaurant string  `json:"restaurant"`
	Cuisine    string  `json:"cuisine"`
	Cost       float64 `json:"cost"`
	Location   string  `json:"location"`
}
