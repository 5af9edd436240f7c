package services

import (
	"context"

	"github.com/google/uuid"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type PreferenceServiceInterface interface {
	GetPreferences(ctx context.Context, userId string) (*response_models.PreferencesResponse, error)
	SavePreferences(ctx context.Context, userId string, req request_models.SavePreferencesRequest) (*response_models.PreferencesResponse, error)
}

type PreferenceService struct {
	prefRepo repositories.PreferenceRepository
}

func NewPreferenceService(prefRepo repositories.PreferenceRepository) PreferenceServiceInterface {
	return &PreferenceService{
		prefRepo: prefRepo,
	}
}

func (s *PreferenceService) GetPreferences(ctx context.Context, userId string) (*response_models.PreferencesResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	pref, err := s.prefRepo.GetByUserId(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if pref == nil {
		return nil, utils.ErrPreferencesNotFound
	}

	return dbm.BuildPreferencesResponse(pref), nil
}

// SavePreferences upserts the user's preference document: update when a row
// already exists, insert otherwise.
func (s *PreferenceService) SavePreferences(ctx context.Context, userId string, req request_models.SavePreferencesRequest) (*response_models.PreferencesResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	existing, err := s.prefRepo.GetByUserId(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	pref := existing
	if pref == nil {
		pref = &dbm.UserPreference{UserID: id}
	}
	applyPreferences(pref, req)

	if existing != nil {
		err = s.prefRepo.Update(ctx, pref)
	} else {
		err = s.prefRepo.Create(ctx, pref)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return dbm.BuildPreferencesResponse(pref), nil
}

func applyPreferences(pref *dbm.UserPreference, req request_models.SavePreferencesRequest) {
	pref.FoodPreferences = req.FoodPreferences
	pref.BudgetRange = req.BudgetRange
	pref.PlaceTypes = req.PlaceTypes
	pref.Activities = req.Activities
	pref.AccommodationType = req.AccommodationType
	pref.TransportationPreference = req.TransportationPreference
	pref.AdventureLevel = req.AdventureLevel
	pref.DietaryRestrictions = req.DietaryRestrictions
	pref.AccessibilityRequirements = req.AccessibilityRequirements
	pref.WeatherComfort = req.WeatherComfort
	pref.GroupSize = req.GroupSize
	pref.LanguagesSpoken = req.LanguagesSpoken
	pref.TravelPace = req.TravelPace
}
