package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetTripsByUser(ctx context.Context, userId string) ([]response_models.TripResponse, error)
	GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, tripId string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, tripId string) error
	GetTripStats(ctx context.Context, userId string) (*response_models.TripStatsResponse, error)
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{
		tripRepo: tripRepo,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, req request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	userId, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.Destination) == "" || req.Duration < 1 {
		return nil, utils.ErrInvalidInput
	}

	start := utils.ParseDateLenient(req.StartDate)
	end := utils.ParseDateLenient(req.EndDate)
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, utils.ErrInvalidInput
	}

	trip := &dbm.Trip{
		UserID:      userId,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Duration:    req.Duration,
		Status:      dbm.TripStatusDraft,
	}
	if err := s.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return dbm.BuildTripResponse(trip), nil
}

func (s *TripService) GetTripsByUser(ctx context.Context, userId string) ([]response_models.TripResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.GetTripsByUserId(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for i := range trips {
		out = append(out, *dbm.BuildTripResponse(&trips[i]))
	}
	return out, nil
}

func (s *TripService) GetTripById(ctx context.Context, tripId string) (*response_models.TripResponse, error) {
	id, err := uuid.Parse(tripId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetTripById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	return dbm.BuildTripResponse(trip), nil
}

func (s *TripService) UpdateTrip(ctx context.Context, tripId string, req request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	id, err := uuid.Parse(tripId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.GetTripById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if req.Destination != nil {
		if strings.TrimSpace(*req.Destination) == "" {
			return nil, utils.ErrInvalidInput
		}
		trip.Destination = *req.Destination
	}
	if req.StartDate != nil {
		start := utils.ParseDateLenient(*req.StartDate)
		if start.IsZero() {
			return nil, utils.ErrInvalidInput
		}
		trip.StartDate = start
	}
	if req.EndDate != nil {
		end := utils.ParseDateLenient(*req.EndDate)
		if end.IsZero() {
			return nil, utils.ErrInvalidInput
		}
		trip.EndDate = end
	}
	if req.Duration != nil {
		if *req.Duration < 1 {
			return nil, utils.ErrInvalidInput
		}
		trip.Duration = *req.Duration
	}

	if err := s.tripRepo.UpdateTrip(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return dbm.BuildTripResponse(trip), nil
}

func (s *TripService) DeleteTrip(ctx context.Context, tripId string) error {
	id, err := uuid.Parse(tripId)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if err := s.tripRepo.DeleteTrip(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) GetTripStats(ctx context.Context, userId string) (*response_models.TripStatsResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	counts, err := s.tripRepo.CountTripsByStatus(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := &response_models.TripStatsResponse{
		Draft:     counts[dbm.TripStatusDraft],
		Confirmed: counts[dbm.TripStatusConfirmed],
		Completed: counts[dbm.TripStatusCompleted],
	}
	stats.Total = stats.Draft + stats.Confirmed + stats.Completed
	return stats, nil
}
