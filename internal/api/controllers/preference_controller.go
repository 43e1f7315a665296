package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rihla/internal/models/request_models"
	"rihla/internal/services"
	"rihla/pkg/utils"
)

type PreferenceController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferenceController(preferenceService services.PreferenceServiceInterface) *PreferenceController {
	return &PreferenceController{
		preferenceService: preferenceService,
	}
}

// POST /api/preferences
func (p *PreferenceController) CreateHandler(c *gin.Context) {
	var req request_models.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "travel_style and budget_range are required")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := p.preferenceService.CreateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Preference profile saved")
}

// GET /api/preferences/latest
func (p *PreferenceController) LatestHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := p.preferenceService.GetLatest(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Latest preference profile fetched")
}
