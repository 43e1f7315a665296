package response_models

type SelectedPlaceResponse struct {
	ID        string  `json:"id"`
	PlaceName string  `json:"place_name"`
	Address   string  `json:"address"`
	ImageURL  string  `json:"image_url,omitempty"`
	Type      string  `json:"type"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

type DailyPlanResponse struct {
	ID        string                  `json:"id"`
	DayNumber int                     `json:"day_number"`
	City      string                  `json:"city"`
	Places    []SelectedPlaceResponse `json:"places"`
}

type ItineraryResponse struct {
	ID          string `json:"id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
}

type ItineraryDetailResponse struct {
	ItineraryResponse
	Days []DailyPlanResponse `json:"days"`
}

// GenerateResult is what the generation pipeline hands back to the client.
// Resumed means the idempotency check found an itinerary for the same date
// range and nothing new was written.
type GenerateResult struct {
	ItineraryID string        `json:"itinerary_id"`
	Resumed     bool          `json:"resumed"`
	Skipped     []SkippedSlot `json:"skipped,omitempty"`
}

type PreferenceProfileResponse struct {
	ID              string   `json:"id"`
	TravelStyle     string   `json:"travel_style"`
	Interests       []string `json:"interests"`
	FavoriteFood    []string `json:"favorite_food"`
	PreferredCities []string `json:"preferred_cities"`
	BudgetRange     string   `json:"budget_range"`
}

type FeedbackResponse struct {
	ID        string   `json:"id"`
	Rating    int      `json:"rating"`
	Comments  string   `json:"comments,omitempty"`
	ImageURLs []string `json:"image_urls,omitempty"`
}
