package request_models

type ItineraryRequest struct {
	Origin       string  `form:"origin" binding:"required"`
	Destination  string  `form:"destination" binding:"required"`
	DailyLimitKm float64 `form:"daily_limit_km,default=250"`
}

type StaysRequest struct {
	Lat       *float64 `form:"lat" binding:"required"`
	Lon       *float64 `form:"lon" binding:"required"`
	Radius    int      `form:"radius,default=6000"`
	PageToken string   `form:"page_token"`
}
