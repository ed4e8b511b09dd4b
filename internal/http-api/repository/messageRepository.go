package repository

import (
	"gapod/internal/http-api/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	GetByID(messageID int64) (*models.Message, error)
	ListSince(cutoff int64, category string) ([]models.Message, error)
	DeleteAll() (int64, error)
	DeleteOlderThan(cutoff int64) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create inserts a new message
func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// GetByID retrieves a message by its ID
func (r *messageRepository) GetByID(messageID int64) (*models.Message, error) {
	var message models.Message
	err := r.db.Where("id = ?", messageID).First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ListSince retrieves all messages newer than cutoff (ms since epoch),
// newest first. An empty category or the sentinel "all" disables the
// category filter. Expired rows are excluded here even if the sweeper has
// not removed them yet.
func (r *messageRepository) ListSince(cutoff int64, category string) ([]models.Message, error) {
	var messages []models.Message

	query := r.db.Where("timestamp > ?", cutoff)
	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	err := query.Order("timestamp DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteAll removes every message; likes and comments go with them via
// cascade. Returns the number of message rows removed.
func (r *messageRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.Message{})
	return result.RowsAffected, result.Error
}

// DeleteOlderThan removes messages with timestamp strictly below cutoff.
func (r *messageRepository) DeleteOlderThan(cutoff int64) (int64, error) {
	result := r.db.Where("timestamp < ?", cutoff).Delete(&models.Message{})
	return result.RowsAffected, result.Error
}
