package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"roadtrip/internal/models/response_models"
	"roadtrip/pkg/utils"
)

type StayServiceInterface interface {
	FindNearby(ctx context.Context, lat, lng float64, radiusMeters int, pageToken string) (*response_models.StaysPage, error)
}

type StayService struct {
	places PlacesClientInterface
}

func NewStayService(places PlacesClientInterface) StayServiceInterface {
	return &StayService{places: places}
}

// FindNearby runs one paginated lodging search and a detail fetch per
// result. A failed detail call degrades that entry to sentinel values
// rather than aborting the page; only the search itself failing is
// surfaced to the caller.
func (s *StayService) FindNearby(ctx context.Context, lat, lng float64, radiusMeters int, pageToken string) (*response_models.StaysPage, error) {
	if !validCoordinates(lat, lng) {
		return nil, utils.ErrInvalidCoordinates
	}
	if radiusMeters <= 0 {
		radiusMeters = 6000
	}

	page, err := s.places.NearbyLodging(ctx, lat, lng, radiusMeters, pageToken)
	if err != nil {
		return nil, err
	}

	stays := make([]response_models.Stay, 0, len(page.Places))
	for _, place := range page.Places {
		stays = append(stays, s.toStay(ctx, place))
	}

	return &response_models.StaysPage{
		Stays:         stays,
		NextPageToken: page.NextPageToken,
	}, nil
}

func (s *StayService) toStay(ctx context.Context, place NearbyPlace) response_models.Stay {
	stay := response_models.Stay{
		Name:     place.Name,
		Phone:    response_models.PhoneNotAvailable,
		PhotoURL: response_models.PhotoNotAvailable,
		PlaceID:  place.PlaceID,
	}

	details, err := s.places.PlaceDetails(ctx, place.PlaceID)
	if err != nil {
		logrus.Warnf("Detail lookup failed for place %s: %v", place.PlaceID, err)
		return stay
	}

	if details.Name != "" {
		stay.Name = details.Name
	}
	if details.Phone != "" {
		stay.Phone = details.Phone
	}
	if details.PhotoReference != "" {
		stay.PhotoURL = s.places.PhotoURL(details.PhotoReference)
	}
	return stay
}
