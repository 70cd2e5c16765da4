package response_models

import "encoding/json"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ItineraryDay is one geometry-derived leg of the trip, produced fresh
// per request and never persisted.
type ItineraryDay struct {
	Day          int    `json:"day"`
	SegmentKm    int    `json:"segment_km"`
	StopLocation LatLng `json:"stop_location"`
	Stay         Stay   `json:"stays"`
}

// NarrativeItinerary holds whatever the language model produced. Parsed
// is a loosely typed document since the upstream shape is not
// contractually guaranteed; on parse failure Raw and Error carry the
// recovered reply instead.
type NarrativeItinerary struct {
	Parsed map[string]interface{} `json:"parsed,omitempty"`
	Raw    string                 `json:"raw,omitempty"`
	Error  string                 `json:"error,omitempty"`
}

// MarshalJSON keeps the wire shape flat: a successful generation
// serializes as the parsed document itself, a recovered failure as
// {"raw": ..., "error": ...}.
func (n NarrativeItinerary) MarshalJSON() ([]byte, error) {
	if n.Parsed != nil {
		return json.Marshal(n.Parsed)
	}
	return json.Marshal(struct {
		Raw   string `json:"raw"`
		Error string `json:"error"`
	}{Raw: n.Raw, Error: n.Error})
}

type ItineraryResponse struct {
	FallbackItinerary []ItineraryDay      `json:"fallback_itinerary"`
	GptItinerary      *NarrativeItinerary `json:"gpt_itinerary"`
}
