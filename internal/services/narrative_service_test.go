package services

import (
	"context"
	"errors"
	"testing"
)

type fakeNarrativeClient struct {
	reply string
	err   error
}

func (f *fakeNarrativeClient) Generate(_ context.Context, _, _ string) (string, error) {
	return f.reply, f.err
}

func TestGenerateItineraryParsesFencedReply(t *testing.T) {
	svc := NewNarrativeService(&fakeNarrativeClient{
		reply: "Sure! ```json\n{\"itinerary\":[]}\n```",
	})

	out := svc.GenerateItinerary(context.Background(), "Delhi", "Gurez Valley")
	if out.Error != "" {
		t.Fatalf("expected parsed output, got error %q", out.Error)
	}
	days, ok := out.Parsed["itinerary"].([]interface{})
	if !ok {
		t.Fatalf("parsed document missing itinerary array: %#v", out.Parsed)
	}
	if len(days) != 0 {
		t.Errorf("itinerary should be empty, got %d entries", len(days))
	}
}

func TestGenerateItineraryParsesCleanJSON(t *testing.T) {
	svc := NewNarrativeService(&fakeNarrativeClient{
		reply: `{"itinerary":[{"day":1,"start":"Delhi","end":"Chandigarh","distance_km":250,"ride_hours":6,"stays":["Sector 17 homestay"]}]}`,
	})

	out := svc.GenerateItinerary(context.Background(), "Delhi", "Gurez Valley")
	if out.Error != "" {
		t.Fatalf("expected parsed output, got error %q", out.Error)
	}
	days := out.Parsed["itinerary"].([]interface{})
	if len(days) != 1 {
		t.Fatalf("got %d days, want 1", len(days))
	}
	day := days[0].(map[string]interface{})
	if day["end"] != "Chandigarh" {
		t.Errorf("day end = %v, want Chandigarh", day["end"])
	}
}

func TestGenerateItineraryRecoversFromNonJSON(t *testing.T) {
	reply := "I'm sorry, I can't plan that trip."
	svc := NewNarrativeService(&fakeNarrativeClient{reply: reply})

	out := svc.GenerateItinerary(context.Background(), "A", "B")
	if out.Parsed != nil {
		t.Fatal("non-JSON reply must not produce a parsed document")
	}
	if out.Raw != reply {
		t.Errorf("raw = %q, want the untouched reply", out.Raw)
	}
	if out.Error != "Could not parse itinerary JSON" {
		t.Errorf("error = %q, want the stable parse-failure marker", out.Error)
	}
}

func TestGenerateItineraryRecoversFromProviderFailure(t *testing.T) {
	svc := NewNarrativeService(&fakeNarrativeClient{err: errors.New("rate limited")})

	out := svc.GenerateItinerary(context.Background(), "A", "B")
	if out.Error == "" {
		t.Fatal("provider failure must surface as a tagged error payload")
	}
	// Provider error details stay in the logs, not the payload.
	if out.Error != "Itinerary generation failed" {
		t.Errorf("error = %q, want the stable failure marker", out.Error)
	}
}

func TestParseItineraryReplyGarbageAfterJSON(t *testing.T) {
	doc, ok := parseItineraryReply("prefix {\"a\":1} trailing words")
	if !ok {
		t.Fatal("JSON with trailing garbage should still parse")
	}
	if doc["a"].(float64) != 1 {
		t.Errorf("doc = %#v", doc)
	}
}

func TestParseItineraryReplyInvalid(t *testing.T) {
	if _, ok := parseItineraryReply("{\"broken\": "); ok {
		t.Error("truncated JSON must not parse")
	}
	if _, ok := parseItineraryReply("no braces here"); ok {
		t.Error("text without an object must not parse")
	}
}
