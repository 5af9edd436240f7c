package repositories

import (
	"context"

	"gorm.io/gorm"

	dbm "voyago/internal/models/db_models"
)

// ItineraryRepository writes the generated itinerary graph. Sequencing,
// meaning which failures abort and which are skipped, lives in the itinerary
// service; this layer is one insert per record.
type ItineraryRepository interface {
	CreateDay(ctx context.Context, day *dbm.DayItinerary) error
	CreateActivity(ctx context.Context, activity *dbm.Activity) error
	CreateMeal(ctx context.Context, meal *dbm.Meal) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateDay(ctx context.Context, day *dbm.DayItinerary) error {
	return r.db.WithContext(ctx).Create(day).Error
}

func (r *itineraryRepository) CreateActivity(ctx context.Context, activity *dbm.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) CreateMeal(ctx context.Context, meal *dbm.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}
