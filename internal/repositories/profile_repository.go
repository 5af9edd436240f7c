package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
)

type ProfileRepository interface {
	GetById(ctx context.Context, id uuid.UUID) (*dbm.Profile, error)
	Update(ctx context.Context, profile *dbm.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetById(ctx context.Context, id uuid.UUID) (*dbm.Profile, error) {
	var profile dbm.Profile
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *dbm.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
