package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
)

type TripRepository interface {
	CreateTrip(ctx context.Context, trip *dbm.Trip) error
	GetTripById(ctx context.Context, tripId uuid.UUID) (*dbm.Trip, error)
	GetTripsByUserId(ctx context.Context, userId uuid.UUID) ([]dbm.Trip, error)
	UpdateTrip(ctx context.Context, trip *dbm.Trip) error
	DeleteTrip(ctx context.Context, tripId uuid.UUID) error
	UpdateTripStatus(ctx context.Context, tripId uuid.UUID, status dbm.TripStatus) error
	CountTripsByStatus(ctx context.Context, userId uuid.UUID) (map[dbm.TripStatus]int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) CreateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) GetTripById(ctx context.Context, tripId uuid.UUID) (*dbm.Trip, error) {
	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Days.Activities").
		Preload("Days.Meals").
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetTripsByUserId(ctx context.Context, userId uuid.UUID) ([]dbm.Trip, error) {
	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("day_number") }).
		Preload("Days.Activities").
		Preload("Days.Meals").
		Find(&trips).Error

	return trips, err
}

func (r *tripRepository) UpdateTrip(ctx context.Context, trip *dbm.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

func (r *tripRepository) DeleteTrip(ctx context.Context, tripId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", tripId).
		Delete(&dbm.Trip{}).Error
}

func (r *tripRepository) UpdateTripStatus(ctx context.Context, tripId uuid.UUID, status dbm.TripStatus) error {
	return r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Where("id = ?", tripId).
		Update("status", status).Error
}

func (r *tripRepository) CountTripsByStatus(ctx context.Context, userId uuid.UUID) (map[dbm.TripStatus]int64, error) {
	type row struct {
		Status dbm.TripStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&dbm.Trip{}).
		Select("status, count(*) as count").
		Where("user_id = ?", userId).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[dbm.TripStatus]int64, len(rows))
	for _, r := range rows {
		out[r.Status] = r.Count
	}
	return out, nil
}
