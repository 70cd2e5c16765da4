package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
)

type NearbyPlace struct {
	PlaceID string
	Name    string
}

type NearbyPage struct {
	Places        []NearbyPlace
	NextPageToken string
}

type PlaceDetails struct {
	Name           string
	Phone          string
	PhotoReference string
}

type PlaceHit struct {
	Name string
	Lat  float64
	Lng  float64
}

// PlacesClientInterface is the slice of the places provider the lodging
// lookup and the link resolver need. Pagination tokens are opaque and
// passed through untouched.
type PlacesClientInterface interface {
	NearbyLodging(ctx context.Context, lat, lng float64, radiusMeters int, pageToken string) (*NearbyPage, error)
	PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error)
	PhotoURL(photoReference string) string
	TextSearch(ctx context.Context, query string) (*PlaceHit, error)
}

type GooglePlacesClient struct {
	HTTP    *http.Client
	APIKey  string
	BaseURL string
}

func NewGooglePlacesClient() *GooglePlacesClient {
	key := os.Getenv("MAPS_API_KEY")
	if key == "" {
		panic("MAPS_API_KEY is empty")
	}
	return &GooglePlacesClient{
		HTTP:    newProviderHTTPClient(),
		APIKey:  key,
		BaseURL: "https://maps.googleapis.com/maps/api/place",
	}
}

func (c *GooglePlacesClient) get(ctx context.Context, path string, q url.Values, out interface{}) error {
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return wrapProviderError("places request", err)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return wrapProviderError("places http", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return wrapProviderError("places", fmt.Errorf("bad status: %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return wrapProviderError("places decode", err)
	}
	return nil
}

func (c *GooglePlacesClient) NearbyLodging(ctx context.Context, lat, lng float64, radiusMeters int, pageToken string) (*NearbyPage, error) {
	q := url.Values{}
	q.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	q.Set("radius", fmt.Sprintf("%d", radiusMeters))
	q.Set("type", "lodging")
	if pageToken != "" {
		q.Set("pagetoken", pageToken)
	}

	var payload struct {
		Status        string `json:"status"`
		NextPageToken string `json:"next_page_token"`
		Results       []struct {
			PlaceID string `json:"place_id"`
			Name    string `json:"name"`
		} `json:"results"`
	}
	if err := c.get(ctx, "/nearbysearch/json", q, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, wrapProviderError("places nearby", fmt.Errorf("status %s", payload.Status))
	}

	page := &NearbyPage{NextPageToken: payload.NextPageToken}
	for _, r := range payload.Results {
		page.Places = append(page.Places, NearbyPlace{PlaceID: r.PlaceID, Name: r.Name})
	}
	return page, nil
}

func (c *GooglePlacesClient) PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	q.Set("fields", "name,formatted_phone_number,photos")

	var payload struct {
		Status string `json:"status"`
		Result struct {
			Name                 string `json:"name"`
			FormattedPhoneNumber string `json:"formatted_phone_number"`
			Photos               []struct {
				PhotoReference string `json:"photo_reference"`
			} `json:"photos"`
		} `json:"result"`
	}
	if err := c.get(ctx, "/details/json", q, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" {
		return nil, wrapProviderError("places details", fmt.Errorf("status %s", payload.Status))
	}

	details := &PlaceDetails{
		Name:  payload.Result.Name,
		Phone: payload.Result.FormattedPhoneNumber,
	}
	if len(payload.Result.Photos) > 0 {
		details.PhotoReference = payload.Result.Photos[0].PhotoReference
	}
	return details, nil
}

// PhotoURL templates a photo reference into a fetchable URL at a fixed
// max width.
func (c *GooglePlacesClient) PhotoURL(photoReference string) string {
	q := url.Values{}
	q.Set("maxwidth", "400")
	q.Set("photo_reference", photoReference)
	q.Set("key", c.APIKey)
	return c.BaseURL + "/photo?" + q.Encode()
}

func (c *GooglePlacesClient) TextSearch(ctx context.Context, query string) (*PlaceHit, error) {
	q := url.Values{}
	q.Set("query", query)

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Name     string `json:"name"`
			Geometry struct {
				Location struct {
					Lat float64 `json:"lat"`
					Lng float64 `json:"lng"`
				} `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := c.get(ctx, "/textsearch/json", q, &payload); err != nil {
		return nil, err
	}
	if payload.Status == "ZERO_RESULTS" || len(payload.Results) == 0 {
		return nil, nil
	}
	if payload.Status != "OK" {
		return nil, wrapProviderError("places text search", fmt.Errorf("status %s", payload.Status))
	}

	top := payload.Results[0]
	return &PlaceHit{
		Name: top.Name,
		Lat:  top.Geometry.Location.Lat,
		Lng:  top.Geometry.Location.Lng,
	}, nil
}
