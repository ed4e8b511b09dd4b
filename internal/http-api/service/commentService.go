package service

import (
	"errors"
	"strings"
	"time"

	"gapod/internal/http-api/dto"
	"gapod/internal/http-api/models"
	"gapod/internal/http-api/repository"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(messageID int64, text, author string, parentID *int64) (*dto.CommentResponse, error)
	ListComments(messageID int64) ([]dto.CommentResponse, error)
	CountComments(messageID int64) (*dto.CommentCountResponse, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	messageRepo repository.MessageRepository
}

func NewCommentService(commentRepo repository.CommentRepository, messageRepo repository.MessageRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		messageRepo: messageRepo,
	}
}

// CreateComment validates and persists a comment. A parent, when given, must
// exist, belong to the same message, and itself be top-level. Rejecting
// replies to replies at write time keeps every row representable in the
// two-level read contract.
func (s *commentService) CreateComment(messageID int64, text, author string, parentID *int64) (*dto.CommentResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	if author == "" {
		author = AnonymousAuthor
	}

	if _, err := s.messageRepo.GetByID(messageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, err
	}

	if parentID != nil {
		parent, err := s.commentRepo.GetByID(*parentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrParentNotFound
			}
			return nil, err
		}
		if parent.MessageID != messageID {
			return nil, ErrParentMismatch
		}
		if parent.ParentID != nil {
			return nil, ErrParentNotTopLevel
		}
	}

	comment := &models.Comment{
		MessageID: messageID,
		Text:      text,
		Author:    author,
		ParentID:  parentID,
		Timestamp: time.Now().UnixMilli(),
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return dto.FromModelToCommentResponse(comment), nil
}

// ListComments returns the message's comments as a two-level tree: top-level
// comments in ascending timestamp order, each carrying its direct replies in
// the same order.
func (s *commentService) ListComments(messageID int64) ([]dto.CommentResponse, error) {
	comments, err := s.commentRepo.ListByMessage(messageID)
	if err != nil {
		return nil, err
	}
	return assembleCommentTree(comments), nil
}

// CountComments counts all comments on a message, replies included.
func (s *commentService) CountComments(messageID int64) (*dto.CommentCountResponse, error) {
	count, err := s.commentRepo.CountByMessage(messageID)
	if err != nil {
		return nil, err
	}
	return &dto.CommentCountResponse{Count: count}, nil
}

// assembleCommentTree partitions rows (already ascending by timestamp) into
// top-level comments and replies, then attaches each reply to its parent.
// Rows arrive ordered, so sibling order is preserved without re-sorting.
func assembleCommentTree(comments []models.Comment) []dto.CommentResponse {
	topLevel := make([]dto.CommentResponse, 0)
	byParent := make(map[int64][]dto.CommentReply)

	for _, comment := range comments {
		if comment.ParentID == nil {
			topLevel = append(topLevel, *dto.FromModelToCommentResponse(&comment))
		} else {
			byParent[*comment.ParentID] = append(byParent[*comment.ParentID], *dto.FromModelToCommentReply(&comment))
		}
	}

	for i := range topLevel {
		if replies, ok := byParent[topLevel[i].ID]; ok {
			topLevel[i].Replies = replies
		}
	}

	return topLevel
}
