package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gapod/internal/http-api/middleware"
	"gapod/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService service.LikeService
}

func NewLikeHandler(likeService service.LikeService) *LikeHandler {
	return &LikeHandler{
		likeService: likeService,
	}
}

// RegisterRoutes registers like-related routes under /messages/:messageId/likes;
// limit throttles writes.
func (h *LikeHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.GET("", h.Count)
	router.GET("/check", h.Check)
	router.POST("/toggle", limit, h.Toggle)
}

// Count returns the like count of a message
// GET /api/messages/:messageId/likes
func (h *LikeHandler) Count(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	count, err := h.likeService.GetLikeCount(messageID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch likes"})
		return
	}

	c.JSON(http.StatusOK, count)
}

// Check reports whether the caller has liked a message
// GET /api/messages/:messageId/likes/check
func (h *LikeHandler) Check(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	status, err := h.likeService.HasLiked(messageID, middleware.UserIdentifier(c))
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check like"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// Toggle flips the caller's like on a message
// POST /api/messages/:messageId/likes/toggle
func (h *LikeHandler) Toggle(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	result, err := h.likeService.ToggleLike(messageID, middleware.UserIdentifier(c))
	if err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle like"})
		return
	}

	c.JSON(http.StatusOK, result)
}
