package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rihla/internal/models/request_models"
	"rihla/internal/services"
	"rihla/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return userID, true
}

// POST /api/itineraries/generate
func (p *PlannerController) GenerateHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result, err := p.plannerService.GenerateItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Itinerary generated successfully"
	if result.Resumed {
		message = "Existing itinerary returned for this date range"
	}
	utils.RespondSuccess(c, result, message)
}

// GET /api/itineraries/generate/availability
func (p *PlannerController) AvailabilityHandler(c *gin.Context) {
	if err := p.plannerService.CheckAvailability(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"available": true}, "Generation backend reachable")
}
