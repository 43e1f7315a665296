package request_models

type CreatePreferenceRequest struct {
	TravelStyle     string   `json:"travel_style" binding:"required"`
	Interests       []string `json:"interests"`
	FavoriteFood    []string `json:"favorite_food"`
	PreferredCities []string `json:"preferred_cities"`
	BudgetRange     string   `json:"budget_range" binding:"required"`
}
