package places_fx

import (
	"go.uber.org/fx"

	"rihla/internal/services"
)

var Module = fx.Provide(
	provideSearchClient, providePlacesService,
)

func provideSearchClient() services.PlaceSearchClient {
	return services.NewGooglePlacesClient()
}

func providePlacesService(searchClient services.PlaceSearchClient) services.PlacesServiceInterface {
	return services.NewPlacesService(searchClient)
}
