package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"career-compass/internal/db"
)

// HealthHandler reporta el estado de las dependencias del servicio.
type HealthHandler struct {
	database     *mongo.Database
	aiConfigured bool
}

// NewHealthHandler crea el handler; database puede ser nil en modo degradado.
func NewHealthHandler(database *mongo.Database, aiConfigured bool) *HealthHandler {
	return &HealthHandler{
		database:     database,
		aiConfigured: aiConfigured,
	}
}

// Health maneja GET /api/health; responde 200 siempre.
func (h *HealthHandler) Health(c *gin.Context) {
	databaseStatus := "unavailable"
	if h.database != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		if err := db.Ping(ctx, h.database); err == nil {
			databaseStatus = "connected"
		}
		cancel()
	}

	aiStatus := "not_configured"
	if h.aiConfigured {
		aiStatus = "configured"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"database":   databaseStatus,
		"ai_service": aiStatus,
	})
}
