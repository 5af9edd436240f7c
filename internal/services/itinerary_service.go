package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
}

// ItineraryService runs the generation pipeline: prompt build, model call,
// extraction, validation, persistence, then a best-effort status transition.
// One linear path; the first failing step short-circuits the rest.
type ItineraryService struct {
	aiClient      utils.GenerationClientInterface
	itineraryRepo repositories.ItineraryRepository
	tripRepo      repositories.TripRepository
}

func NewItineraryService(
	aiClient utils.GenerationClientInterface,
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
) ItineraryServiceInterface {
	return &ItineraryService{
		aiClient:      aiClient,
		itineraryRepo: itineraryRepo,
		tripRepo:      tripRepo,
	}
}

func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	tripId, err := uuid.Parse(req.TripID)
	if err != nil {
		return nil, fmt.Errorf("%w: tripId must be a UUID", utils.ErrInvalidInput)
	}

	prompt := BuildItineraryPrompt(req)

	raw, err := s.aiClient.GenerateItineraryText(ctx, prompt)
	if err != nil {
		return nil, err
	}

	candidate := utils.ExtractJSONBlock(raw)

	itinerary, err := ParseGeneratedItinerary(candidate)
	if err != nil {
		log.Printf("Failed to parse model reply: %v", err)
		return nil, err
	}

	summary, err := s.persistDays(ctx, tripId, itinerary)
	if err != nil {
		return nil, err
	}

	// The itinerary rows are committed at this point, so a failed status
	// transition degrades the result instead of failing it.
	if err := s.tripRepo.UpdateTripStatus(ctx, tripId, dbm.TripStatusConfirmed); err != nil {
		log.Printf("Error updating trip %s status: %v", tripId, err)
	} else {
		summary.StatusConfirmed = true
	}

	return &response_models.GenerateItineraryResponse{
		Success:        true,
		TripID:         tripId.String(),
		PersistSummary: *summary,
	}, nil
}

// ParseGeneratedItinerary validates a candidate JSON payload against the
// expected itinerary shape. Payloads that are not JSON objects or lack a
// top-level days sequence are rejected; per-day fields are lenient and
// default to their zero values. Day numbers are persisted as returned,
// without deduplication or reordering.
func ParseGeneratedItinerary(text string) (*response_models.GeneratedItinerary, error) {
	trimmed := strings.TrimSpace(text)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}
	if _, ok := probe["days"]; !ok {
		return nil, fmt.Errorf("%w: missing top-level \"days\"", utils.ErrMalformedResponse)
	}

	var itinerary response_models.GeneratedItinerary
	if err := json.Unmarshal([]byte(trimmed), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrMalformedResponse, err)
	}
	if itinerary.Days == nil {
		return nil, fmt.Errorf("%w: \"days\" is not a sequence", utils.ErrMalformedResponse)
	}

	return &itinerary, nil
}

// persistDays writes the itinerary graph in reply order. A failed day insert
// aborts the whole operation; a failed activity or meal insert is recorded
// and skipped so one bad leaf never discards an otherwise-good day.
func (s *ItineraryService) persistDays(ctx context.Context, tripId uuid.UUID, itinerary *response_models.GeneratedItinerary) (*response_models.PersistSummary, error) {
	summary := &response_models.PersistSummary{}

	for _, day := range itinerary.Days {
		dayRow := &dbm.DayItinerary{
			TripID:        tripId,
			DayNumber:     day.DayNumber,
			Date:          utils.ParseDateLenient(day.Date),
			Accommodation: day.Accommodation,
		}
		if err := s.itineraryRepo.CreateDay(ctx, dayRow); err != nil {
			return summary, &utils.PersistenceError{DayNumber: day.DayNumber, Err: err}
		}
		summary.DaysCreated++

		for _, act := range day.Activities {
			row := &dbm.Activity{
				DayItineraryID: dayRow.ID,
				Name:           act.Name,
				Description:    act.Description,
				Location:       act.Location,
				Duration:       act.Duration,
				Cost:           act.Cost,
				Category:       act.Category,
			}
			if act.Coordinates != nil {
				lat, lng := act.Coordinates.Lat, act.Coordinates.Lng
				row.Latitude, row.Longitude = &lat, &lng
			}
			if err := s.itineraryRepo.CreateActivity(ctx, row); err != nil {
				log.Printf("Error creating activity %q for day %d: %v", act.Name, day.DayNumber, err)
				summary.Skipped = append(summary.Skipped, response_models.SkippedWrite{
					DayNumber: day.DayNumber,
					Kind:      "activity",
					Name:      act.Name,
					Reason:    err.Error(),
				})
				continue
			}
			summary.ActivitiesCreated++
		}

		for _, meal := range day.Meals {
			row := &dbm.Meal{
				DayItineraryID: dayRow.ID,
				MealType:       meal.MealType,
				Restaurant:     meal.Restaurant,
				Cuisine:        meal.Cuisine,
				Cost:           meal.Cost,
				Location:       meal.Location,
			}
			if err := s.itineraryRepo.CreateMeal(ctx, row); err != nil {
				log.Printf("Error creating %s meal for day %d: %v", meal.MealType, day.DayNumber, err)
				summary.Skipped = append(summary.Skipped, response_models.SkippedWrite{
					DayNumber: day.DayNumber,
					Kind:      "meal",
					Name:      meal.Restaurant,
					Reason:    err.Error(),
				})
				continue
			}
			summary.MealsCreated++
		}
	}

	return summary, nil
}
