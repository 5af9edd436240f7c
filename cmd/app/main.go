package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/cmd/fx/ai_fx"
	"voyago/cmd/fx/config_fx"
	"voyago/cmd/fx/controllers_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/itinerary_fx"
	"voyago/cmd/fx/preference_fx"
	"voyago/cmd/fx/profile_fx"
	"voyago/cmd/fx/trip_fx"
	"voyago/internal/api/controllers"
	"voyago/internal/config"
	"voyago/internal/infra"
	"voyago/pkg/middleware"
	"voyago/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		ai_fx.Module,
		trip_fx.Module,
		itinerary_fx.Module,
		preference_fx.Module,
		profile_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, db *gorm.DB, aiClient utils.GenerationClientInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			if err := aiClient.Close(); err != nil {
				log.Printf("Error closing generation client: %v", err)
			}
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController,
	preferencesController *controllers.PreferencesController,
	profileController *controllers.ProfileController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripsController, itineraryController, preferencesController, profileController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController,
	preferencesController *controllers.PreferencesController,
	profileController *controllers.ProfileController) {

	api := r.Group("/api")

	trips := api.Group("/trips")
	trips.POST("", tripsController.CreateTripHandler)
	trips.GET("", tripsController.ListTripsHandler)
	trips.GET("/:id", tripsController.GetTripHandler)
	trips.PUT("/:id", tripsController.UpdateTripHandler)
	trips.DELETE("/:id", tripsController.DeleteTripHandler)
	trips.GET("/stats/:userId", tripsController.TripStatsHandler)

	itinerary := api.Group("/itinerary")
	itinerary.POST("/generate", itineraryController.GenerateItineraryHandler)

	preferences := api.Group("/preferences")
	preferences.GET("/:userId", preferencesController.GetPreferencesHandler)
	preferences.PUT("/:userId", preferencesController.SavePreferencesHandler)

	profile := api.Group("/profile")
	profile.GET("/:userId", profileController.GetProfileHandler)
	profile.PUT("/:userId", profileController.UpdateProfileHandler)
}
