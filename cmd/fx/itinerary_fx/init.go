package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"wanderplan/internal/repositories"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

var Module = fx.Provide(provideItineraryRepo, provideItineraryEngine, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryEngine() *services.ItineraryEngine {
	return services.NewItineraryEngine()
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	aiClient utils.ItineraryModelClient,
	engine *services.ItineraryEngine,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, aiClient, engine)
}
