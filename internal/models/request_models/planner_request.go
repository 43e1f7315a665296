package request_models

type GenerateItineraryRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	ForceNew  bool   `json:"force_new"`
}
