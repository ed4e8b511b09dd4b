package repository

import (
	"gapod/internal/http-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(commentID int64) (*models.Comment, error)
	ListByMessage(messageID int64) ([]models.Comment, error)
	CountByMessage(messageID int64) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a new comment
func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

// GetByID retrieves a comment by its ID
func (r *commentRepository) GetByID(commentID int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ?", commentID).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByMessage retrieves every comment on a message, replies included,
// oldest first. Tree assembly happens in the service layer.
func (r *commentRepository) ListByMessage(messageID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("message_id = ?", messageID).
		Order("timestamp ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CountByMessage counts all comments on a message, replies included.
func (r *commentRepository) CountByMessage(messageID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Comment{}).Where("message_id = ?", messageID).Count(&count).Error
	return count, err
}
