package planner_fx

import (
	"go.uber.org/fx"

	"roadtrip/internal/services"
)

var Module = fx.Provide(provideRoutePlanner)

func provideRoutePlanner(
	directions services.DirectionsClientInterface,
	stays services.StayServiceInterface) services.RoutePlannerInterface {

	return services.NewRoutePlanner(directions, stays)
}
