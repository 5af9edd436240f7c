package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
)

type PreferenceRepository interface {
	GetByUserId(ctx context.Context, userId uuid.UUID) (*dbm.UserPreference, error)
	Create(ctx context.Context, pref *dbm.UserPreference) error
	Update(ctx context.Context, pref *dbm.UserPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserId(ctx context.Context, userId uuid.UUID) (*dbm.UserPreference, error) {
	var pref dbm.UserPreference
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		First(&pref).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &pref, nil
}

func (r *preferenceRepository) Create(ctx context.Context, pref *dbm.UserPreference) error {
	return r.db.WithContext(ctx).Create(pref).Error
}

func (r *preferenceRepository) Update(ctx context.Context, pref *dbm.UserPreference) error {
	return r.db.WithContext(ctx).Save(pref).Error
}
