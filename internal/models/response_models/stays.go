package response_models

// Sentinel values stand in for data the places provider did not return,
// so callers never see nulls.
const (
	PhoneNotAvailable = "Not available"
	PhotoNotAvailable = "No photo available"
	NoLodgingFound    = "No lodging found"
)

type Stay struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
	PlaceID  string `json:"place_id,omitempty"`
}

type StaysPage struct {
	Stays         []Stay `json:"stays"`
	NextPageToken string `json:"next_page_token"`
}
