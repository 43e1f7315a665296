package request_models

type RecommendRequest struct {
	Vector []float64 `json:"vector" binding:"required"`
	TopN   int       `json:"top_n"`
}

// AddCatalogPlaceRequest inserts a curated place with its precomputed
// feature vector into the recommendation catalog.
type AddCatalogPlaceRequest struct {
	Name     string    `json:"name" binding:"required"`
	City     string    `json:"city" binding:"required"`
	Stars    *float64  `json:"stars"`
	ImageURL string    `json:"image_url"`
	Vector   []float64 `json:"vector" binding:"required"`
}
