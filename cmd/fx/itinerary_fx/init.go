package itinerary_fx

import (
	"go.uber.org/fx"

	"rihla/internal/api/controllers"
	"rihla/internal/repositories"
	"rihla/internal/services"
)

var Module = fx.Provide(
	provideItineraryService, provideItineraryController,
)

func provideItineraryService(itineraryRepo repositories.ItineraryRepository) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo)
}

func provideItineraryController(itineraryService services.ItineraryServiceInterface) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}
