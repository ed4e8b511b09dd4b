package dto

import (
	"time"

	"gapod/internal/http-api/models"
)

// CreateMessageDTO for posting a new message
type CreateMessageDTO struct {
	Text     string `json:"text" binding:"required,max=2000"`
	Author   string `json:"author" binding:"max=100"`
	Category string `json:"category" binding:"required,max=100"`
}

// MessageResponse for returning message information
type MessageResponse struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Category  string    `json:"category"`
	Timestamp int64     `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToMessageResponse converts a Message model to MessageResponse DTO
func FromModelToMessageResponse(message *models.Message) *MessageResponse {
	return &MessageResponse{
		ID:        message.ID,
		Text:      message.Text,
		Author:    message.Author,
		Category:  message.Category,
		Timestamp: message.Timestamp,
		CreatedAt: message.CreatedAt,
	}
}

// DeleteMessagesResponse reports how many messages a bulk clear removed
type DeleteMessagesResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}
