package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"voyago/internal/repositories"
	"voyago/internal/services"
	"voyago/pkg/utils"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	aiClient utils.GenerationClientInterface,
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(aiClient, itineraryRepo, tripRepo)
}
