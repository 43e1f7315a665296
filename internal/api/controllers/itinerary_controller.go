package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rihla/internal/models/request_models"
	"rihla/internal/services"
	"rihla/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// POST /api/itineraries
func (i *ItineraryController) CreateHandler(c *gin.Context) {
	var req request_models.CreateManualItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date and end_date are required")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.CreateManualItinerary(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerary created")
}

// POST /api/itineraries/places/toggle
func (i *ItineraryController) TogglePlaceHandler(c *gin.Context) {
	var req request_models.TogglePlaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	added, err := i.itineraryService.TogglePlace(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Place removed from day"
	if added {
		message = "Place added to day"
	}
	utils.RespondSuccess(c, gin.H{"added": added}, message)
}

// GET /api/itineraries?page=1&page_size=10
func (i *ItineraryController) ListHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "page must be a number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "page_size must be a number")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	itineraries, err := i.itineraryService.ListByUser(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itineraries, "Itineraries fetched")
}

// GET /api/itineraries/:id
func (i *ItineraryController) DetailsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := i.itineraryService.GetDetails(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, detail, "Itinerary fetched")
}

// DELETE /api/itineraries/:id
func (i *ItineraryController) DeleteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := i.itineraryService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary deleted")
}
