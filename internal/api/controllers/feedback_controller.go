package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rihla/internal/models/request_models"
	"rihla/internal/services"
	"rihla/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
	}
}

// POST /api/feedback
func (f *FeedbackController) CreateHandler(c *gin.Context) {
	var req request_models.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "itinerary_id and rating (1-5) are required")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	feedback, err := f.feedbackService.Create(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, feedback, "Feedback recorded")
}

// GET /api/feedback/:itinerary_id
func (f *FeedbackController) ListHandler(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListByItinerary(c.Request.Context(), c.Param("itinerary_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, feedbacks, "Feedback fetched")
}
