package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-compass/internal/service"
)

// AdvisorHandler mantiene dependencias para endpoints de orientación.
type AdvisorHandler struct {
	logger  *zap.Logger
	advisor *service.AdvisorService
}

// NewAdvisorHandler crea una instancia de AdvisorHandler.
func NewAdvisorHandler(logger *zap.Logger, advisor *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{
		logger:  logger,
		advisor: advisor,
	}
}

// Assessment maneja POST /api/assessment.
func (h *AdvisorHandler) Assessment(c *gin.Context) {
	var req struct {
		Skills          []string `json:"skills"`
		Interests       []string `json:"interests"`
		ExperienceLevel string   `json:"experienceLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}

	recommendations := h.advisor.RecommendCareers(c.Request.Context(), req.Skills, req.Interests, req.ExperienceLevel)
	c.JSON(http.StatusOK, gin.H{"success": true, "recommendations": recommendations})
}

// Resources maneja POST /api/resources.
func (h *AdvisorHandler) Resources(c *gin.Context) {
	var req struct {
		Career string `json:"career"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid resources request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request"})
		return
	}
	if strings.TrimSpace(req.Career) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Career path is required"})
		return
	}

	resources := h.advisor.LearningResources(c.Request.Context(), req.Career)
	c.JSON(http.StatusOK, gin.H{"success": true, "resources": resources})
}

// CareerCategories maneja GET /api/career-categories.
func (h *AdvisorHandler) CareerCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": service.CareerCategories()})
}
