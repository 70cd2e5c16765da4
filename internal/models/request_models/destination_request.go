package request_models

type CreateDestinationRequest struct {
	Name      string   `json:"name" binding:"required"`
	Lat       *float64 `json:"lat" binding:"required"`
	Long      *float64 `json:"long" binding:"required"`
	ImageURLs []string `json:"image_urls"`
}

// UpdateDestinationRequest carries a partial patch. Every field is a
// pointer so "not provided" stays distinguishable from a zero value;
// moving a destination recomputes its derived id.
type UpdateDestinationRequest struct {
	Name      *string   `json:"name"`
	Lat       *float64  `json:"lat"`
	Long      *float64  `json:"long"`
	ImageURLs *[]string `json:"image_urls"`
}
