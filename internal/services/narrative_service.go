package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"roadtrip/internal/models/response_models"
)

const narrativeSystemPrompt = "You are a travel itinerary generator."

const narrativeTimeout = 30 * time.Second

type NarrativeServiceInterface interface {
	// GenerateItinerary never returns a hard error: provider failures
	// and unparseable replies come back as a tagged {raw, error}
	// payload for the caller to surface.
	GenerateItinerary(ctx context.Context, origin, destination string) *response_models.NarrativeItinerary
}

type NarrativeService struct {
	llm NarrativeClientInterface
}

func NewNarrativeService(llm NarrativeClientInterface) NarrativeServiceInterface {
	return &NarrativeService{llm: llm}
}

func buildItineraryPrompt(origin, destination string) string {
	return fmt.Sprintf(`You are a travel planner specialized in planning road trips for people who travel with their own vehicles, such as motorcycles or cars. Your users only travel to hilly or mountainous regions and prefer scenic, adventure-filled routes.

Plan a road trip itinerary from %s to %s. The plan should consider distance and terrain and break the journey into multiple days if required.

For each day, specify:
- The distance to be covered
- The key stop or town for the night
- Suggested sightseeing places on the way
- An ideal place to stay (example: town, homestay, campsite)

The final response must be a JSON object with the following structure:

{
  "itinerary": [
    {
      "day": 1,
      "date": "YYYY-MM-DD",
      "start": "Start town",
      "end": "Night stop",
      "distance_km": 150,
      "ride_hours": 5,
      "stays": ["Suggested town or homestay"]
    }
  ]
}

Provide the JSON response without any markdown formatting or code blocks. Just raw JSON.`, origin, destination)
}

func (s *NarrativeService) GenerateItinerary(ctx context.Context, origin, destination string) *response_models.NarrativeItinerary {
	ctx, cancel := context.WithTimeout(ctx, narrativeTimeout)
	defer cancel()

	reply, err := s.llm.Generate(ctx, narrativeSystemPrompt, buildItineraryPrompt(origin, destination))
	if err != nil {
		logrus.Errorf("Narrative generation failed: %v", err)
		return &response_models.NarrativeItinerary{
			Error: "Itinerary generation failed",
		}
	}

	parsed, ok := parseItineraryReply(reply)
	if !ok {
		logrus.Warnf("Narrative reply was not parseable JSON (%d bytes)", len(reply))
		return &response_models.NarrativeItinerary{
			Raw:   reply,
			Error: "Could not parse itinerary JSON",
		}
	}
	return &response_models.NarrativeItinerary{Parsed: parsed}
}

// parseItineraryReply parses the model's reply from the first '{'
// onward, tolerating leading commentary and trailing fencing the model
// may emit despite JSON mode. The shape inside is deliberately left as
// a loose document; the upstream contract guarantees nothing.
func parseItineraryReply(reply string) (map[string]interface{}, bool) {
	start := strings.Index(reply, "{")
	if start < 0 {
		return nil, false
	}

	var doc map[string]interface{}
	dec := json.NewDecoder(strings.NewReader(reply[start:]))
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}
	return doc, true
}
