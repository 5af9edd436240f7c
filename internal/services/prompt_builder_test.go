package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"voyago/internal/models/request_models"
	"voyago/internal/services"
)

func parisRequest() request_models.GenerateItineraryRequest {
	return request_models.GenerateItineraryRequest{
		TripID:      "8e188053-44a9-4dc8-a373-7f88c1699f95",
		Destination: "Paris, France",
		StartDate:   "2024-01-01",
		EndDate:     "2024-01-03",
		Duration:    3,
		Preferences: request_models.GenerationPreferences{
			BudgetRange: "medium",
			GroupSize:   "solo",
			Activities:  []string{"culture"},
		},
	}
}

func TestBuildItineraryPrompt_Deterministic(t *testing.T) {
	req := parisRequest()
	assert.Equal(t, services.BuildItineraryPrompt(req), services.BuildItineraryPrompt(req))
}

func TestBuildItineraryPrompt_EmbedsRequestFields(t *testing.T) {
	prompt := services.BuildItineraryPrompt(parisRequest())

	assert.Contains(t, prompt, "Create a 3-day travel itinerary for Paris, France from 2024-01-01 to 2024-01-03")
	assert.Contains(t, prompt, "Budget: medium")
	assert.Contains(t, prompt, "Group: solo")
	assert.Contains(t, prompt, "Activities: culture")
}

func TestBuildItineraryPrompt_EmbedsOutputSchema(t *testing.T) {
	prompt := services.BuildItineraryPrompt(parisRequest())

	// The schema example is what makes the reply mechanically parseable.
	for _, key := range []string{`"days"`, `"day_number"`, `"accommodation"`, `"activities"`, `"meals"`, `"meal_type"`} {
		assert.Contains(t, prompt, key)
	}
	assert.Contains(t, prompt, `"date": "2024-01-01"`)
}

func TestBuildItineraryPrompt_DefaultsForEmptyPreferences(t *testing.T) {
	req := parisRequest()
	req.Preferences = request_models.GenerationPreferences{}

	prompt := services.BuildItineraryPrompt(req)

	assert.Contains(t, prompt, "Budget: medium")
	assert.Contains(t, prompt, "Group: solo")
	assert.Contains(t, prompt, "Activities: general sightseeing")
}

func TestBuildItineraryPrompt_JoinsActivityList(t *testing.T) {
	req := parisRequest()
	req.Preferences.Activities = []string{"culture", "food", "hiking"}

	prompt := services.BuildItineraryPrompt(req)

	assert.Contains(t, prompt, "Activities: culture, food, hiking")
	assert.Equal(t, 1, strings.Count(prompt, "Activities: "))
}

func TestBuildItineraryPrompt_PassesMalformedInputVerbatim(t *testing.T) {
	req := parisRequest()
	req.Destination = ""

	// Never raises; an empty destination flows through as-is.
	prompt := services.BuildItineraryPrompt(req)
	assert.Contains(t, prompt, "travel itinerary for  from 2024-01-01")
}
