package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jirabridge/internal/shared/constants"
)

// HealthHandler reports process liveness and database connectivity.
type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	dbStatus := "up"
	httpStatus := http.StatusOK

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status = "degraded"
			dbStatus = "down"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	c.JSON(httpStatus, gin.H{
		"status":   status,
		"service":  constants.ServiceName,
		"version":  constants.ServiceVersion,
		"database": dbStatus,
	})
}
