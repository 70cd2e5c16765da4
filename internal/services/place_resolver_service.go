package services

import (
	"context"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"roadtrip/internal/models/response_models"
	"roadtrip/pkg/memcache"
	"roadtrip/pkg/utils"
)

const resolvedLinkTTL = 24 * time.Hour

type PlaceResolverInterface interface {
	// ResolveLink expands a shared map short-link to its final
	// redirect target.
	ResolveLink(ctx context.Context, sharedURL string) (string, error)

	// ResolvePlace expands the link and extracts a name and
	// coordinates from it, falling back to a text search when the URL
	// itself carries no coordinates.
	ResolvePlace(ctx context.Context, sharedURL string) (*response_models.ResolvedPlace, error)
}

type PlaceResolver struct {
	HTTP   *http.Client
	places PlacesClientInterface
	links  memcache.ResolvedLinkStore
}

func NewPlaceResolver(places PlacesClientInterface, links memcache.ResolvedLinkStore) PlaceResolverInterface {
	return &PlaceResolver{
		HTTP:   newProviderHTTPClient(),
		places: places,
		links:  links,
	}
}

func (r *PlaceResolver) ResolveLink(ctx context.Context, sharedURL string) (string, error) {
	if cached, ok := r.links.Get(sharedURL); ok {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, "GET", sharedURL, nil)
	if err != nil {
		return "", utils.ErrPlaceNotResolved
	}
	resp, err := r.HTTP.Do(req)
	if err != nil {
		return "", wrapProviderError("link expansion", err)
	}
	defer resp.Body.Close()

	// The client has already chased the redirect chain; the request
	// attached to the response carries the landing URL.
	resolved := resp.Request.URL.String()
	r.links.Set(sharedURL, resolved, resolvedLinkTTL)
	return resolved, nil
}

func (r *PlaceResolver) ResolvePlace(ctx context.Context, sharedURL string) (*response_models.ResolvedPlace, error) {
	resolved, err := r.ResolveLink(ctx, sharedURL)
	if err != nil {
		return nil, err
	}

	name := extractPlaceName(resolved)
	if lat, lng, ok := extractCoordinates(resolved); ok {
		return &response_models.ResolvedPlace{Name: name, Lat: lat, Lng: lng}, nil
	}

	if name != "" {
		hit, err := r.places.TextSearch(ctx, name)
		if err != nil {
			logrus.Warnf("Text search fallback failed for %q: %v", name, err)
			return nil, err
		}
		if hit != nil {
			return &response_models.ResolvedPlace{Name: hit.Name, Lat: hit.Lat, Lng: hit.Lng}, nil
		}
	}

	return nil, utils.ErrPlaceNotResolved
}

var (
	viewportCoordsRe = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)
	markerCoordsRe   = regexp.MustCompile(`!3d(-?\d+\.?\d*)!4d(-?\d+\.?\d*)`)
	queryCoordsRe    = regexp.MustCompile(`[?&]q=(-?\d+\.?\d*)\s*,\s*(-?\d+\.?\d*)`)
)

// extractCoordinates pulls a coordinate pair out of an expanded map URL,
// preferring the viewport anchor, then the place marker, then a q=
// query parameter.
func extractCoordinates(expandedURL string) (float64, float64, bool) {
	for _, re := range []*regexp.Regexp{viewportCoordsRe, markerCoordsRe, queryCoordsRe} {
		m := re.FindStringSubmatch(expandedURL)
		if m == nil {
			continue
		}
		lat, errLat := strconv.ParseFloat(m[1], 64)
		lng, errLng := strconv.ParseFloat(m[2], 64)
		if errLat != nil || errLng != nil {
			continue
		}
		if validCoordinates(lat, lng) {
			return lat, lng, true
		}
	}
	return 0, 0, false
}

// extractPlaceName reads the human-readable name from the /place/<name>/
// path segment of an expanded map URL.
func extractPlaceName(expandedURL string) string {
	u, err := url.Parse(expandedURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(u.Path, "/")
	for i, seg := range segments {
		if seg == "place" && i+1 < len(segments) && segments[i+1] != "" {
			name := strings.ReplaceAll(segments[i+1], "+", " ")
			if decoded, err := url.PathUnescape(name); err == nil {
				name = decoded
			}
			return name
		}
	}
	return ""
}
