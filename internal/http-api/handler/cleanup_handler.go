package handler

import (
	"net/http"

	"gapod/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CleanupHandler exposes the retention sweep to external schedulers (a cron
// hitting POST /api/cleanup) and a health probe that pings the database.
type CleanupHandler struct {
	retentionService service.RetentionService
	db               *gorm.DB
}

func NewCleanupHandler(retentionService service.RetentionService, db *gorm.DB) *CleanupHandler {
	return &CleanupHandler{
		retentionService: retentionService,
		db:               db,
	}
}

// RegisterRoutes registers maintenance routes
func (h *CleanupHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/cleanup", h.Cleanup)
	router.GET("/health", h.Health)
}

// Cleanup deletes expired messages and reports how many were removed
// POST /api/cleanup
func (h *CleanupHandler) Cleanup(c *gin.Context) {
	deleted, err := h.retentionService.SweepExpired()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cleanup messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// Health reports API and database status
// GET /api/health
func (h *CleanupHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "connected"})
}
