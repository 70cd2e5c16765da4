package services

import (
	"context"
	"errors"
	"testing"

	"roadtrip/internal/models/response_models"
	"roadtrip/pkg/utils"
)

type scriptedPlaces struct {
	page       *NearbyPage
	nearbyErr  error
	details    map[string]*PlaceDetails
	detailsErr error
}

func (s *scriptedPlaces) NearbyLodging(_ context.Context, _, _ float64, _ int, _ string) (*NearbyPage, error) {
	return s.page, s.nearbyErr
}

func (s *scriptedPlaces) PlaceDetails(_ context.Context, placeID string) (*PlaceDetails, error) {
	if s.detailsErr != nil {
		return nil, s.detailsErr
	}
	return s.details[placeID], nil
}

func (s *scriptedPlaces) PhotoURL(ref string) string {
	return "https://photos.example/photo?maxwidth=400&photo_reference=" + ref
}

func (s *scriptedPlaces) TextSearch(context.Context, string) (*PlaceHit, error) {
	return nil, nil
}

func TestFindNearbyNormalizesResults(t *testing.T) {
	places := &scriptedPlaces{
		page: &NearbyPage{
			Places:        []NearbyPlace{{PlaceID: "p1", Name: "Mountain Inn"}, {PlaceID: "p2", Name: "Valley Lodge"}},
			NextPageToken: "tok-next",
		},
		details: map[string]*PlaceDetails{
			"p1": {Name: "Mountain Inn", Phone: "+91 12345", PhotoReference: "ref-abc"},
			"p2": {Name: "Valley Lodge"}, // no phone, no photo
		},
	}
	svc := NewStayService(places)

	page, err := svc.FindNearby(context.Background(), 34.6, 74.8, 6000, "")
	if err != nil {
		t.Fatalf("FindNearby failed: %v", err)
	}

	if page.NextPageToken != "tok-next" {
		t.Errorf("page token = %q, want passthrough %q", page.NextPageToken, "tok-next")
	}
	if len(page.Stays) != 2 {
		t.Fatalf("got %d stays, want 2", len(page.Stays))
	}

	first := page.Stays[0]
	if first.Phone != "+91 12345" {
		t.Errorf("phone = %q", first.Phone)
	}
	if first.PhotoURL != "https://photos.example/photo?maxwidth=400&photo_reference=ref-abc" {
		t.Errorf("photo url = %q, want templated reference", first.PhotoURL)
	}

	second := page.Stays[1]
	if second.Phone != response_models.PhoneNotAvailable {
		t.Errorf("missing phone should yield sentinel, got %q", second.Phone)
	}
	if second.PhotoURL != response_models.PhotoNotAvailable {
		t.Errorf("missing photo should yield sentinel, got %q", second.PhotoURL)
	}
}

func TestFindNearbyDetailFailureDegrades(t *testing.T) {
	places := &scriptedPlaces{
		page:       &NearbyPage{Places: []NearbyPlace{{PlaceID: "p1", Name: "Mountain Inn"}}},
		detailsErr: utils.ErrUpstreamFailure,
	}
	svc := NewStayService(places)

	page, err := svc.FindNearby(context.Background(), 34.6, 74.8, 6000, "")
	if err != nil {
		t.Fatalf("a detail failure must not abort the lookup: %v", err)
	}
	stay := page.Stays[0]
	if stay.Name != "Mountain Inn" {
		t.Errorf("name should fall back to the search result, got %q", stay.Name)
	}
	if stay.Phone != response_models.PhoneNotAvailable || stay.PhotoURL != response_models.PhotoNotAvailable {
		t.Errorf("degraded entry should carry sentinels, got %+v", stay)
	}
}

func TestFindNearbySearchFailureAborts(t *testing.T) {
	svc := NewStayService(&scriptedPlaces{nearbyErr: utils.ErrUpstreamFailure})

	_, err := svc.FindNearby(context.Background(), 34.6, 74.8, 6000, "")
	if !errors.Is(err, utils.ErrUpstreamFailure) {
		t.Errorf("got %v, want the search failure surfaced", err)
	}
}

func TestFindNearbyRejectsBadCoordinates(t *testing.T) {
	svc := NewStayService(&scriptedPlaces{page: &NearbyPage{}})

	if _, err := svc.FindNearby(context.Background(), 95, 0, 6000, ""); !errors.Is(err, utils.ErrInvalidCoordinates) {
		t.Errorf("got %v, want ErrInvalidCoordinates", err)
	}
}

func TestFindNearbyEmptyPage(t *testing.T) {
	svc := NewStayService(&scriptedPlaces{page: &NearbyPage{}})

	page, err := svc.FindNearby(context.Background(), 10, 10, 6000, "")
	if err != nil {
		t.Fatalf("FindNearby failed: %v", err)
	}
	if page.Stays == nil || len(page.Stays) != 0 {
		t.Errorf("empty provider page should yield an empty, non-nil slice: %#v", page.Stays)
	}
}
