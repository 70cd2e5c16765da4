package maps_fx

import (
	"go.uber.org/fx"

	"roadtrip/internal/services"
)

var Module = fx.Provide(
	providePlacesClient, provideDirectionsClient, provideStayService)

func providePlacesClient() services.PlacesClientInterface {
	return services.NewGooglePlacesClient()
}

func provideDirectionsClient() services.DirectionsClientInterface {
	return services.NewGoogleDirectionsClient()
}

func provideStayService(places services.PlacesClientInterface) services.StayServiceInterface {
	return services.NewStayService(places)
}
