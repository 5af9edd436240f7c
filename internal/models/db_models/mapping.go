package db_models

import (
	"voyago/internal/models/response_models"
	"voyago/pkg/utils"
)

func BuildTripResponse(trip *Trip) *response_models.TripResponse {
	out := &response_models.TripResponse{
		ID:          trip.ID.String(),
		UserID:      trip.UserID.String(),
		Destination: trip.Destination,
		StartDate:   utils.FormatDate(trip.StartDate),
		EndDate:     utils.FormatDate(trip.EndDate),
		Duration:    trip.Duration,
		Status:      string(trip.Status),
	}

	for _, day := range trip.Days {
		dayOut := response_models.DayItineraryResponse{
			ID:            day.ID.String(),
			DayNumber:     day.DayNumber,
			Date:          utils.FormatDate(day.Date),
			Accommodation: day.Accommodation,
			Activities:    make([]response_models.ActivityResponse, 0, len(day.Activities)),
			Meals:         make([]response_models.MealResponse, 0, len(day.Meals)),
		}
		for _, act := range day.Activities {
			dayOut.Activities = append(dayOut.Activities, response_models.ActivityResponse{
				ID:          act.ID.String(),
				Name:        act.Name,
				Description: act.Description,
				Location:    act.Location,
				Duration:    act.Duration,
				Cost:        act.Cost,
				Category:    act.Category,
				Latitude:    act.Latitude,
				Longitude:   act.Longitude,
			})
		}
		for _, meal := range day.Meals {
			dayOut.Meals = append(dayOut.Meals, response_models.MealResponse{
				ID:         meal.ID.String(),
				MealType:   meal.MealType,
				Restaurant: meal.Restaurant,
				Cuisine:    meal.Cuisine,
				Cost:       meal.Cost,
				Location:   meal.Location,
			})
		}
		out.Days = append(out.Days, dayOut)
	}

	return out
}

func BuildPreferencesResponse(pref *UserPreference) *response_models.PreferencesResponse {
	return &response_models.PreferencesResponse{
		FoodPreferences:           pref.FoodPreferences,
		BudgetRange:               pref.BudgetRange,
		PlaceTypes:                pref.PlaceTypes,
		Activities:                pref.Activities,
		AccommodationType:         pref.AccommodationType,
		TransportationPreference:  pref.TransportationPreference,
		AdventureLevel:            pref.AdventureLevel,
		DietaryRestrictions:       pref.DietaryRestrictions,
		AccessibilityRequirements: pref.AccessibilityRequirements,
		WeatherComfort:            pref.WeatherComfort,
		GroupSize:                 pref.GroupSize,
		LanguagesSpoken:           pref.LanguagesSpoken,
		TravelPace:                pref.TravelPace,
	}
}
