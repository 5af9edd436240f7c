package request_models

// GenerationPreferences is the slice of the user's preference document that
// steers itinerary generation.
type GenerationPreferences struct {
	BudgetRange string   `json:"budgetRange"`
	GroupSize   string   `json:"groupSize"`
	Activities  []string `json:"activities"`
}

// GenerateItineraryRequest is the body of POST /api/itinerary/generate.
// Immutable input to the pipeline; constructed once per invocation.
type GenerateItineraryRequest struct {
	TripID      string                `json:"tripId" binding:"required"`
	Destination string                `json:"destination" binding:"required"`
	StartDate   string                `json:"startDate"`
	EndDate     string                `json:"endDate"`
	Duration    int                   `json:"duration" binding:"required"`
	Preferences GenerationPreferences `json:"preferences"`
}
