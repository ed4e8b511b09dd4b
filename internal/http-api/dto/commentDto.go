package dto

import (
	"time"

	"gapod/internal/http-api/models"
)

// CreateCommentDTO for posting a comment or a reply
type CreateCommentDTO struct {
	Text     string `json:"text" binding:"required,max=2000"`
	Author   string `json:"author" binding:"max=100"`
	ParentID *int64 `json:"parentId"`
}

// CommentResponse for returning comment information. Threading is exactly two
// levels deep, so replies get their own flat type: a top-level comment always
// carries a replies array (possibly empty), a reply never carries the key.
type CommentResponse struct {
	ID        int64          `json:"id"`
	MessageID int64          `json:"message_id"`
	Text      string         `json:"text"`
	Author    string         `json:"author"`
	ParentID  *int64         `json:"parent_id"`
	Timestamp int64          `json:"timestamp"`
	CreatedAt time.Time      `json:"created_at"`
	Replies   []CommentReply `json:"replies"`
}

// CommentReply is a second-level comment attached to a CommentResponse.
type CommentReply struct {
	ID        int64     `json:"id"`
	MessageID int64     `json:"message_id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	ParentID  *int64    `json:"parent_id"`
	Timestamp int64     `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToCommentResponse converts a Comment model to CommentResponse DTO
func FromModelToCommentResponse(comment *models.Comment) *CommentResponse {
	return &CommentResponse{
		ID:        comment.ID,
		MessageID: comment.MessageID,
		Text:      comment.Text,
		Author:    comment.Author,
		ParentID:  comment.ParentID,
		Timestamp: comment.Timestamp,
		CreatedAt: comment.CreatedAt,
		Replies:   make([]CommentReply, 0),
	}
}

// FromModelToCommentReply converts a Comment model to CommentReply DTO
func FromModelToCommentReply(comment *models.Comment) *CommentReply {
	return &CommentReply{
		ID:        comment.ID,
		MessageID: comment.MessageID,
		Text:      comment.Text,
		Author:    comment.Author,
		ParentID:  comment.ParentID,
		Timestamp: comment.Timestamp,
		CreatedAt: comment.CreatedAt,
	}
}

// CommentCountResponse for returning the comment count of a message
type CommentCountResponse struct {
	Count int64 `json:"count"`
}
