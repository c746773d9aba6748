package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wanderplan/internal/models/request_models"
	"wanderplan/internal/services"
	"wanderplan/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a travel itinerary
// @Description Generate a complete day-by-day itinerary for the given trip. Always returns a full itinerary; synthetic content is substituted when the AI output is unusable.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} response_models.GeneratedItinerary
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	userId := c.GetString("user_id")

	result, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}

// GetItineraries godoc
// @Summary List saved itineraries
// @Description Fetch a paginated list of the caller's saved itineraries
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItinerarySummary
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries [get]
func (i *ItineraryController) GetItineraries(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	userId := c.GetString("user_id")
	if userId == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	itineraries, err := i.itineraryService.GetListOfItineraries(c.Request.Context(), page, pageSize, userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItineraryById godoc
// @Summary Get itinerary by ID
// @Description Fetch one saved itinerary with its full document
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.StoredItinerary
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItineraryById(c *gin.Context) {
	itineraryId := c.Param("itineraryId")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	itinerary, err := i.itineraryService.GetItineraryById(c.Request.Context(), itineraryId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// DeleteItinerary godoc
// @Summary Delete itinerary
// @Description Delete a saved itinerary and its flattened rows
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{itineraryId} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	itineraryId := c.Param("itineraryId")
	if itineraryId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	if err := i.itineraryService.DeleteItinerary(c.Request.Context(), itineraryId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
