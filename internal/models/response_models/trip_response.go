package response_models

type TripResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	Destination string `json:"destination"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`

	Days []DayItineraryResponse `json:"days,omitempty"`
}

type DayItineraryResponse struct {
	ID            string `json:"id"`
	DayNumber     int    `json:"dayNumber"`
	Date          string `json:"date"`
	Accommodation string `json:"accommodation,omitempty"`

	Activities []ActivityResponse `json:"activities"`
	Meals      []MealResponse     `json:"meals"`
}

type ActivityResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	Duration    int      `json:"duration,omitempty"`
	Cost        float64  `json:"cost,omitempty"`
	Category    string   `json:"category,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

type MealResponse struct {
	ID         string  `json:"id"`
	MealType   string  `json:"mealType"`
	Restaurant string  `json:"restaurant,omitempty"`
	Cuisine    string  `json:"cuisine,omitempty"`
	Cost       float64 `json:"cost,omitempty"`
	Location   string  `json:"location,omitempty"`
}

// TripStatsResponse backs the profile page's trip statistics card.
type TripStatsResponse struct {
	Total     int64 `json:"total"`
	Draft     int64 `json:"draft"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
}
