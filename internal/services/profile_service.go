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

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userId string, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error)
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{
		profileRepo: profileRepo,
	}
}

func (s *ProfileService) GetProfile(ctx context.Context, userId string) (*response_models.ProfileResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	profile, err := s.profileRepo.GetById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	return buildProfileResponse(profile), nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userId string, req request_models.UpdateProfileRequest) (*response_models.ProfileResponse, error) {
	id, err := uuid.Parse(userId)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	profile, err := s.profileRepo.GetById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return nil, utils.ErrProfileNotFound
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.ProfilePicture != nil {
		profile.ProfilePicture = *req.ProfilePicture
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return buildProfileResponse(profile), nil
}

func buildProfileResponse(profile *dbm.Profile) *response_models.ProfileResponse {
	return &response_models.ProfileResponse{
		ID:             profile.ID.String(),
		FullName:       profile.FullName,
		Email:          profile.Email,
		Country:        profile.Country,
		City:           profile.City,
		ProfilePicture: profile.ProfilePicture,
	}
}
