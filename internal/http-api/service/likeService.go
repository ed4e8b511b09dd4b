package service

import (
	"errors"

	"gapod/internal/http-api/dto"
	"gapod/internal/http-api/repository"

	"gorm.io/gorm"
)

type LikeService interface {
	GetLikeCount(messageID int64) (*dto.LikeCountResponse, error)
	HasLiked(messageID int64, userIdentifier string) (*dto.LikeCheckResponse, error)
	ToggleLike(messageID int64, userIdentifier string) (*dto.LikeToggleResponse, error)
}

type likeService struct {
	likeRepo    repository.LikeRepository
	messageRepo repository.MessageRepository
}

func NewLikeService(likeRepo repository.LikeRepository, messageRepo repository.MessageRepository) LikeService {
	return &likeService{
		likeRepo:    likeRepo,
		messageRepo: messageRepo,
	}
}

// GetLikeCount returns the like count for a message. An unknown message ID
// yields zero, not an error.
func (s *likeService) GetLikeCount(messageID int64) (*dto.LikeCountResponse, error) {
	count, err := s.likeRepo.CountByMessage(messageID)
	if err != nil {
		return nil, err
	}
	return &dto.LikeCountResponse{Count: count}, nil
}

// HasLiked reports whether this user identifier currently likes the message.
func (s *likeService) HasLiked(messageID int64, userIdentifier string) (*dto.LikeCheckResponse, error) {
	liked, err := s.likeRepo.Exists(messageID, userIdentifier)
	if err != nil {
		return nil, err
	}
	return &dto.LikeCheckResponse{Liked: liked}, nil
}

// ToggleLike flips the like state for the (message, user) pair. The message
// must exist; leniency here would let the toggle insert orphan rows.
func (s *likeService) ToggleLike(messageID int64, userIdentifier string) (*dto.LikeToggleResponse, error) {
	if _, err := s.messageRepo.GetByID(messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	liked, count, err := s.likeRepo.Toggle(messageID, userIdentifier)
	if err != nil {
		return nil, err
	}

	return &dto.LikeToggleResponse{Liked: liked, Count: count}, nil
}
