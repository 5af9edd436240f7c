package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

const userID = "3f0f0a6e-9d71-4c55-9a34-2f9d7b7f7ab1"

func createTripRequest() request_models.CreateTripRequest {
	return request_models.CreateTripRequest{
		UserID:      userID,
		Destination: "Kyoto, Japan",
		StartDate:   "2024-04-01",
		EndDate:     "2024-04-05",
		Duration:    5,
	}
}

func TestCreateTrip_StartsAsDraft(t *testing.T) {
	var created *dbm.Trip
	repo := &mockTripRepo{createTrip: func(_ context.Context, trip *dbm.Trip) error {
		trip.ID = uuid.New()
		created = trip
		return nil
	}}

	svc := services.NewTripService(repo)
	resp, err := svc.CreateTrip(context.Background(), createTripRequest())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, dbm.TripStatusDraft, created.Status)
	assert.Equal(t, userID, created.UserID.String())
	assert.Equal(t, "Kyoto, Japan", resp.Destination)
	assert.Equal(t, "2024-04-01", resp.StartDate)
	assert.Equal(t, string(dbm.TripStatusDraft), resp.Status)
}

func TestCreateTrip_RejectsBadInput(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{createTrip: func(context.Context, *dbm.Trip) error {
		t.Fatal("repository should not be reached")
		return nil
	}})

	cases := []struct {
		name   string
		mutate func(r *request_models.CreateTripRequest)
	}{
		{"bad user id", func(r *request_models.CreateTripRequest) { r.UserID = "nope" }},
		{"blank destination", func(r *request_models.CreateTripRequest) { r.Destination = "   " }},
		{"zero duration", func(r *request_models.CreateTripRequest) { r.Duration = 0 }},
		{"unparseable start date", func(r *request_models.CreateTripRequest) { r.StartDate = "April 1" }},
		{"end before start", func(r *request_models.CreateTripRequest) { r.EndDate = "2024-03-01" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := createTripRequest()
			tc.mutate(&req)
			_, err := svc.CreateTrip(context.Background(), req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestGetTripById_NotFound(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{})

	_, err := svc.GetTripById(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestGetTripById_IncludesNestedDays(t *testing.T) {
	trip := &dbm.Trip{
		UserID:      uuid.MustParse(userID),
		Destination: "Kyoto, Japan",
		StartDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Duration:    5,
		Status:      dbm.TripStatusConfirmed,
		Days: []dbm.DayItinerary{
			{
				DayNumber:  1,
				Date:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
				Activities: []dbm.Activity{{Name: "Fushimi Inari"}},
				Meals:      []dbm.Meal{{MealType: "dinner", Restaurant: "Izakaya"}},
			},
		},
	}
	trip.ID = uuid.New()
	repo := &mockTripRepo{getTripById: func(_ context.Context, tripId uuid.UUID) (*dbm.Trip, error) {
		assert.Equal(t, trip.ID, tripId)
		return trip, nil
	}}

	svc := services.NewTripService(repo)
	resp, err := svc.GetTripById(context.Background(), trip.ID.String())

	require.NoError(t, err)
	require.Len(t, resp.Days, 1)
	assert.Equal(t, "Fushimi Inari", resp.Days[0].Activities[0].Name)
	assert.Equal(t, "dinner", resp.Days[0].Meals[0].MealType)
}

func TestUpdateTrip_PartialUpdate(t *testing.T) {
	trip := &dbm.Trip{
		UserID:      uuid.MustParse(userID),
		Destination: "Kyoto, Japan",
		StartDate:   time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		Duration:    5,
		Status:      dbm.TripStatusDraft,
	}
	trip.ID = uuid.New()
	var saved *dbm.Trip
	repo := &mockTripRepo{
		getTripById: func(context.Context, uuid.UUID) (*dbm.Trip, error) { return trip, nil },
		updateTrip: func(_ context.Context, t *dbm.Trip) error {
			saved = t
			return nil
		},
	}

	destination := "Osaka, Japan"
	svc := services.NewTripService(repo)
	resp, err := svc.UpdateTrip(context.Background(), trip.ID.String(), request_models.UpdateTripRequest{
		Destination: &destination,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Osaka, Japan", saved.Destination)
	// Untouched fields survive the partial update.
	assert.Equal(t, 5, saved.Duration)
	assert.Equal(t, "Osaka, Japan", resp.Destination)
}

func TestUpdateTrip_NotFound(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{})

	destination := "Osaka, Japan"
	_, err := svc.UpdateTrip(context.Background(), uuid.NewString(), request_models.UpdateTripRequest{
		Destination: &destination,
	})

	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestDeleteTrip_InvalidID(t *testing.T) {
	svc := services.NewTripService(&mockTripRepo{})
	assert.ErrorIs(t, svc.DeleteTrip(context.Background(), "nope"), utils.ErrInvalidInput)
}

func TestGetTripStats_SumsCounts(t *testing.T) {
	repo := &mockTripRepo{countTripsByStatus: func(context.Context, uuid.UUID) (map[dbm.TripStatus]int64, error) {
		return map[dbm.TripStatus]int64{
			dbm.TripStatusDraft:     2,
			dbm.TripStatusConfirmed: 3,
		}, nil
	}}

	svc := services.NewTripService(repo)
	stats, err := svc.GetTripStats(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Draft)
	assert.Equal(t, int64(3), stats.Confirmed)
	assert.Equal(t, int64(0), stats.Completed)
	assert.Equal(t, int64(5), stats.Total)
}
