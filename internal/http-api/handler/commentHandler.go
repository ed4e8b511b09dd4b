package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gapod/internal/http-api/dto"
	"gapod/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService service.CommentService
}

func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// RegisterRoutes registers comment-related routes under
// /messages/:messageId/comments; limit throttles writes.
func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup, limit gin.HandlerFunc) {
	router.GET("", h.List)
	router.GET("/count", h.Count)
	router.POST("", limit, h.Create)
}

// Create posts a comment or a reply on a message
// POST /api/messages/:messageId/comments
func (h *CommentHandler) Create(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	var req dto.CreateCommentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	comment, err := h.commentService.CreateComment(messageID, req.Text, req.Author, req.ParentID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrTextRequired),
			errors.Is(err, service.ErrParentNotFound),
			errors.Is(err, service.ErrParentMismatch),
			errors.Is(err, service.ErrParentNotTopLevel):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		}
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// List returns the two-level comment tree of a message
// GET /api/messages/:messageId/comments
func (h *CommentHandler) List(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	comments, err := h.commentService.ListComments(messageID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// Count returns the total comment count of a message, replies included
// GET /api/messages/:messageId/comments/count
func (h *CommentHandler) Count(c *gin.Context) {
	messageID, err := strconv.ParseInt(c.Param("messageId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message ID"})
		return
	}

	count, err := h.commentService.CountComments(messageID)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch comment count"})
		return
	}

	c.JSON(http.StatusOK, count)
}
