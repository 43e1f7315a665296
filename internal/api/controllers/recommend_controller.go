package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rihla/internal/models/request_models"
	"rihla/internal/services"
	"rihla/pkg/utils"
)

type RecommendController struct {
	recommendService services.RecommendServiceInterface
}

func NewRecommendController(recommendService services.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		recommendService: recommendService,
	}
}

// POST /api/recommendations
func (r *RecommendController) RecommendHandler(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "vector is required")
		return
	}

	places, err := r.recommendService.Recommend(c.Request.Context(), req.Vector, req.TopN)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, places, "Recommendations ranked")
}

// POST /api/catalog
func (r *RecommendController) AddCatalogPlaceHandler(c *gin.Context) {
	var req request_models.AddCatalogPlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "name, city and vector are required")
		return
	}

	if err := r.recommendService.AddCatalogPlace(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Catalog place added")
}
