package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
)

// BuildItineraryPrompt renders a generation request into the instruction
// text sent to the model. Pure function of its input: same request, same
// prompt. The embedded schema example is what makes the reply mechanically
// parseable, so it must stay in lockstep with GeneratedItinerary.
func BuildItineraryPrompt(req request_models.GenerateItineraryRequest) string {
	budget := req.Preferences.BudgetRange
	if budget == "" {
		budget = "medium"
	}
	group := req.Preferences.GroupSize
	if group == "" {
		group = "solo"
	}
	activities := strings.Join(req.Preferences.Activities, ", ")
	if activities == "" {
		activities = "general sightseeing"
	}

	return fmt.Sprintf(`Create a %d-day travel itinerary for %s from %s to %s.
Budget: %s
Group: %s
Activities: %s

Return ONLY valid JSON in this exact format:
{
  "days": [
    {
      "day_number": 1,
      "date": "%s",
      "accommodation": "Hotel name and address",
      "activities": [
        {
          "name": "Activity name",
          "description": "Brief description",
          "location": "Specific location with address",
          "duration": 120,
          "category": "sightseeing",
          "cost": 30
        }
      ],
      "meals": [
        {
          "meal_type": "lunch",
          "restaurant": "Restaurant name",
          "cuisine": "Local cuisine type",
          "location": "Restaurant address",
          "cost": 20
        }
      ]
    }
  ]
}`, req.Duration, req.Destination, req.StartDate, req.EndDate, budget, group, activities, req.StartDate)
}
