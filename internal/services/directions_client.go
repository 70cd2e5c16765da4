package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"roadtrip/internal/models/response_models"
	"roadtrip/pkg/utils"
)

// RouteStep is one turn-by-turn unit of a fetched route. Ephemeral.
type RouteStep struct {
	Km  float64
	End response_models.LatLng
}

type DirectionsClientInterface interface {
	// DrivingRoute returns the ordered steps of the first leg of a
	// single driving route, no alternatives.
	DrivingRoute(ctx context.Context, origin, destination string) ([]RouteStep, error)
}

type GoogleDirectionsClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGoogleDirectionsClient() *GoogleDirectionsClient {
	key := os.Getenv("MAPS_API_KEY")
	if key == "" {
		panic("MAPS_API_KEY is empty")
	}
	return &GoogleDirectionsClient{
		HTTP:    newProviderHTTPClient(),
		APIKey:  key,
		BaseURL: "https://maps.googleapis.com/maps/api/directions",
	}
}

func (c *GoogleDirectionsClient) DrivingRoute(ctx context.Context, origin, destination string) ([]RouteStep, error) {
	q := url.Values{}
	q.Set("origin", origin)
	q.Set("destination", destination)
	q.Set("mode", "driving")
	q.Set("alternatives", "false")
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/json?"+q.Encode(), nil)
	if err != nil {
		return nil, wrapProviderError("directions request", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, wrapProviderError("directions http", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, wrapProviderError("directions", fmt.Errorf("bad status: %s", resp.Status))
	}

	var payload struct {
		Status string `json:"status"`
		Routes []struct {
			Legs []struct {
				Steps []struct {
					Distance struct {
						Value int `json:"value"` // meters
					} `json:"distance"`
					EndLocation struct {
						Lat float64 `json:"lat"`
						Lng float64 `json:"lng"`
					} `json:"end_location"`
				} `json:"steps"`
			} `json:"legs"`
		} `json:"routes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, wrapProviderError("directions decode", err)
	}

	switch payload.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return nil, utils.ErrRouteNotFound
	default:
		return nil, wrapProviderError("directions", fmt.Errorf("status %s", payload.Status))
	}
	if len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return nil, utils.ErrRouteNotFound
	}

	leg := payload.Routes[0].Legs[0]
	steps := make([]RouteStep, 0, len(leg.Steps))
	for _, s := range leg.Steps {
		steps = append(steps, RouteStep{
			Km: float64(s.Distance.Value) / 1000.0,
			End: response_models.LatLng{
				Lat: s.EndLocation.Lat,
				Lng: s.EndLocation.Lng,
			},
		})
	}
	return steps, nil
}
