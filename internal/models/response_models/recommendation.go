package response_models

// ScoredPlace is an enriched catalog entry with its cosine similarity
// against the user's preference vector, rounded to 3 decimal places.
type ScoredPlace struct {
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Stars    *float64 `json:"stars"`
	ImageURL string   `json:"image_url,omitempty"`
	Score    float64  `json:"score"`
}
