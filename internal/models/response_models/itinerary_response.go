package response_models

// SkippedWrite records one leaf item (activity or meal) that failed to
// insert and was skipped without discarding its day.
type SkippedWrite struct {
	DayNumber int    `json:"day_number"`
	Kind      string `json:"kind"` // "activity" or "meal"
	Name      string `json:"name"`
	Reason    string `json:"reason"`
}

// PersistSummary is the per-item outcome of writing an itinerary, so callers
// and tests can observe exactly what was skipped rather than digging through
// log lines.
type PersistSummary struct {
	DaysCreated       int            `json:"daysCreated"`
	ActivitiesCreated int            `json:"activitiesCreated"`
	MealsCreated      int            `json:"mealsCreated"`
	Skipped           []SkippedWrite `json:"skipped,omitempty"`

	// StatusConfirmed is false when the itinerary rows were committed but
	// the trip's transition from draft to confirmed failed. The call still
	// counts as a success; this flag lets callers detect the stale status.
	StatusConfirmed bool `json:"statusConfirmed"`
}

type GenerateItineraryResponse struct {
	Success bool   `json:"success"`
	TripID  string `json:"tripId"`
	PersistSummary
}
