package request_models

type CreateManualItineraryRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// TogglePlaceRequest adds a place to a city-day, or removes it when a row
// with the same name already exists on that day. Place fields come from
// the candidate catalog the client browsed, never free text.
type TogglePlaceRequest struct {
	ItineraryID string   `json:"itinerary_id" binding:"required"`
	DayNumber   int      `json:"day_number" binding:"required,min=1"`
	City        string   `json:"city" binding:"required"`
	PlaceName   string   `json:"place_name" binding:"required"`
	Address     string   `json:"address"`
	ImageURL    string   `json:"image_url"`
	Type        string   `json:"type"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Stars       *float64 `json:"stars"`
}

type CreateFeedbackRequest struct {
	ItineraryID string   `json:"itinerary_id" binding:"required"`
	Rating      int      `json:"rating" binding:"required,min=1,max=5"`
	Comments    string   `json:"comments"`
	ImageURLs   []string `json:"image_urls"`
}
