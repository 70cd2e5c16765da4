package response_models

type ResolvedPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

type ResolvedLink struct {
	ResolvedURL string `json:"resolved_url"`
}
