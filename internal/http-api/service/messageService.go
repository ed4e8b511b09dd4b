package service

import (
	"strings"
	"time"

	"gapod/internal/http-api/dto"
	"gapod/internal/http-api/models"
	"gapod/internal/http-api/repository"
)

const AnonymousAuthor = "Anonymous"

type MessageService interface {
	CreateMessage(text, author, category string) (*dto.MessageResponse, error)
	ListMessages(category string) ([]dto.MessageResponse, error)
	DeleteAllMessages() (int64, error)
}

type messageService struct {
	messageRepo     repository.MessageRepository
	retentionWindow time.Duration
}

func NewMessageService(messageRepo repository.MessageRepository, retentionWindow time.Duration) MessageService {
	return &messageService{
		messageRepo:     messageRepo,
		retentionWindow: retentionWindow,
	}
}

// CreateMessage validates and persists a new message. The timestamp is
// assigned here from the server clock, never taken from the caller.
func (s *messageService) CreateMessage(text, author, category string) (*dto.MessageResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if strings.TrimSpace(category) == "" {
		return nil, ErrCategoryRequired
	}
	if author == "" {
		author = AnonymousAuthor
	}

	message := &models.Message{
		Text:      text,
		Author:    author,
		Category:  category,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}

	return dto.FromModelToMessageResponse(message), nil
}

// ListMessages returns all unexpired messages, newest first, optionally
// filtered by exact category. This is lazy expiry: rows past the retention
// window are filtered out of the view whether or not the sweeper has
// physically deleted them.
func (s *messageService) ListMessages(category string) ([]dto.MessageResponse, error) {
	cutoff := time.Now().Add(-s.retentionWindow).UnixMilli()

	messages, err := s.messageRepo.ListSince(cutoff, category)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, *dto.FromModelToMessageResponse(&message))
	}
	return responses, nil
}

// DeleteAllMessages unconditionally clears the board. Likes and comments go
// with their messages via cascade.
func (s *messageService) DeleteAllMessages() (int64, error) {
	return s.messageRepo.DeleteAll()
}
