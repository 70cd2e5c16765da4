package services

import (
	"context"
	"math"

	"github.com/sirupsen/logrus"

	"roadtrip/internal/models/response_models"
	"roadtrip/pkg/utils"
)

const stayLookupRadiusMeters = 6000

type RoutePlannerInterface interface {
	PlanRoute(ctx context.Context, origin, destination string, dailyLimitKm float64) ([]response_models.ItineraryDay, error)
}

type RoutePlanner struct {
	directions DirectionsClientInterface
	stays      StayServiceInterface
}

func NewRoutePlanner(directions DirectionsClientInterface, stays StayServiceInterface) RoutePlannerInterface {
	return &RoutePlanner{
		directions: directions,
		stays:      stays,
	}
}

// PlanRoute walks the route's steps in order and closes a day every time
// the accumulated distance reaches the daily cap (inclusive), attaching
// a lodging suggestion at the stop. The accumulator resets to zero on
// each boundary, discarding the overshoot, and distance left over after
// the last step is dropped entirely: a route shorter than the cap
// yields no days. Both quirks are load-bearing for compatibility; see
// DESIGN.md before changing them.
func (p *RoutePlanner) PlanRoute(ctx context.Context, origin, destination string, dailyLimitKm float64) ([]response_models.ItineraryDay, error) {
	if dailyLimitKm <= 0 {
		return nil, utils.ErrInvalidDailyLimit
	}

	steps, err := p.directions.DrivingRoute(ctx, origin, destination)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, utils.ErrRouteNotFound
	}

	days := make([]response_models.ItineraryDay, 0)
	accumulated := 0.0
	day := 1

	for _, step := range steps {
		accumulated += step.Km
		if accumulated < dailyLimitKm {
			continue
		}

		days = append(days, response_models.ItineraryDay{
			Day:          day,
			SegmentKm:    int(math.Round(accumulated)),
			StopLocation: step.End,
			Stay:         p.stayAt(ctx, step.End),
		})
		accumulated = 0
		day++
	}

	return days, nil
}

// stayAt fetches the first lodging result near a day boundary. An empty
// result set or a failed lookup degrades to a sentinel stay; a day
// boundary without lodging is recoverable, not an error.
func (p *RoutePlanner) stayAt(ctx context.Context, stop response_models.LatLng) response_models.Stay {
	noLodging := response_models.Stay{
		Name:     response_models.NoLodgingFound,
		Phone:    response_models.PhoneNotAvailable,
		PhotoURL: response_models.PhotoNotAvailable,
	}

	page, err := p.stays.FindNearby(ctx, stop.Lat, stop.Lng, stayLookupRadiusMeters, "")
	if err != nil {
		logrus.Warnf("Lodging lookup failed at %f,%f: %v", stop.Lat, stop.Lng, err)
		return noLodging
	}
	if len(page.Stays) == 0 {
		return noLodging
	}
	return page.Stays[0]
}
