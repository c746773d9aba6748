package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderplan/internal/repositories"
	"wanderplan/pkg/utils"
)

type HealthController struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewHealthController(itineraryRepo repositories.ItineraryRepository) *HealthController {
	return &HealthController{
		itineraryRepo: itineraryRepo,
	}
}

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "healthy"}, "Service is running")
}

// DBCheck godoc
// @Summary Database connectivity check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /db-check [get]
func (h *HealthController) DBCheck(c *gin.Context) {
	if err := h.itineraryRepo.Ping(c.Request.Context()); err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	utils.RespondSuccess(c, gin.H{"database": "connected"}, "Database connection is healthy")
}
