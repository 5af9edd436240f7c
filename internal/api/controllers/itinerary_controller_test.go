package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/api/controllers"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

type mockItineraryService struct {
	generate func(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error)
}

func (m *mockItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
	return m.generate(ctx, req)
}

func newItineraryRouter(svc *mockItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORSMiddleware())
	ctrl := controllers.NewItineraryController(svc)
	router.POST("/api/itinerary/generate", ctrl.GenerateItineraryHandler)
	return router
}

func generateBody() string {
	return `{
		"tripId": "8e188053-44a9-4dc8-a373-7f88c1699f95",
		"destination": "Paris, France",
		"startDate": "2024-01-01",
		"endDate": "2024-01-03",
		"duration": 3,
		"preferences": {"budgetRange": "medium", "groupSize": "solo", "activities": ["culture"]}
	}`
}

func TestGenerateItineraryHandler_Success(t *testing.T) {
	svc := &mockItineraryService{generate: func(_ context.Context, req request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
		assert.Equal(t, "Paris, France", req.Destination)
		return &response_models.GenerateItineraryResponse{
			Success: true,
			TripID:  req.TripID,
			PersistSummary: response_models.PersistSummary{
				DaysCreated:       3,
				ActivitiesCreated: 6,
				MealsCreated:      9,
				StatusConfirmed:   true,
			},
		}, nil
	}}
	router := newItineraryRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", strings.NewReader(generateBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status string `json:"status"`
		Code   int    `json:"code"`
		Data   struct {
			Success     bool   `json:"success"`
			TripID      string `json:"tripId"`
			DaysCreated int    `json:"daysCreated"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "success", envelope.Status)
	assert.True(t, envelope.Data.Success)
	assert.Equal(t, "8e188053-44a9-4dc8-a373-7f88c1699f95", envelope.Data.TripID)
	assert.Equal(t, 3, envelope.Data.DaysCreated)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGenerateItineraryHandler_MissingRequiredFields(t *testing.T) {
	svc := &mockItineraryService{generate: func(context.Context, request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
		t.Fatal("service should not be reached")
		return nil, nil
	}}
	router := newItineraryRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", strings.NewReader(`{"destination": "Paris"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateItineraryHandler_MissingAPIKey(t *testing.T) {
	svc := &mockItineraryService{generate: func(context.Context, request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
		return nil, utils.ErrAPIKeyMissing
	}}
	router := newItineraryRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", strings.NewReader(generateBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "error", envelope.Status)
	assert.Equal(t, "Gemini API key not configured", envelope.Message)
}

func TestGenerateItineraryHandler_UpstreamFailure(t *testing.T) {
	svc := &mockItineraryService{generate: func(context.Context, request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
		return nil, &utils.UpstreamError{StatusCode: 503, Body: "model overloaded", Attempts: 3}
	}}
	router := newItineraryRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/itinerary/generate", strings.NewReader(generateBody()))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGenerateItineraryHandler_Preflight(t *testing.T) {
	svc := &mockItineraryService{generate: func(context.Context, request_models.GenerateItineraryRequest) (*response_models.GenerateItineraryResponse, error) {
		t.Fatal("preflight must not reach the handler")
		return nil, nil
	}}
	router := newItineraryRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/itinerary/generate", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "authorization, x-client-info, apikey, content-type", rec.Header().Get("Access-Control-Allow-Headers"))
}
