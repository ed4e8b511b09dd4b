package handler

import (
	"errors"
	"net/http"

	"gapod/internal/http-api/dto"
	"gapod/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// RegisterRoutes registers message-related routes; limit throttles writes.
func (h *MessageHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.GET("", h.List)
	router.POST("", limit, h.Create)
	router.DELETE("", limit, h.DeleteAll)
}

// Create posts a new message
// POST /api/messages
func (h *MessageHandler) Create(c *gin.Context) {
	var req dto.CreateMessageDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text and category are required"})
		return
	}

	message, err := h.messageService.CreateMessage(req.Text, req.Author, req.Category)
	if err != nil {
		if errors.Is(err, service.ErrTextRequired) || errors.Is(err, service.ErrCategoryRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create message"})
		return
	}

	c.JSON(http.StatusCreated, message)
}

// List retrieves all unexpired messages, optionally filtered by category
// GET /api/messages?category=General
func (h *MessageHandler) List(c *gin.Context) {
	category := c.Query("category")

	messages, err := h.messageService.ListMessages(category)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// DeleteAll clears the whole board
// DELETE /api/messages
func (h *MessageHandler) DeleteAll(c *gin.Context) {
	deleted, err := h.messageService.DeleteAllMessages()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete messages"})
		return
	}

	c.JSON(http.StatusOK, dto.DeleteMessagesResponse{
		Deleted: deleted,
		Message: "All messages deleted",
	})
}
