package repository

import (
	"gapod/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	CountByMessage(messageID int64) (int64, error)
	Exists(messageID int64, userIdentifier string) (bool, error)
	Toggle(messageID int64, userIdentifier string) (liked bool, count int64, err error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// CountByMessage counts likes for a message; 0 for an unknown message ID.
func (r *likeRepository) CountByMessage(messageID int64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&count).Error
	return count, err
}

// Exists reports whether the (message, user) pair already has a like row.
func (r *likeRepository) Exists(messageID int64, userIdentifier string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("message_id = ? AND user_identifier = ?", messageID, userIdentifier).
		Count(&count).Error
	return count > 0, err
}

// Toggle flips the like state for one (message, user) pair and returns the
// new state plus the recomputed count, all inside a single transaction.
//
// Insert-or-delete is asymmetric, so the insert is attempted first with
// ON CONFLICT DO NOTHING: if the row already existed (including the case
// where a concurrent toggle won the race) the conflict reports zero rows
// affected and the toggle becomes an unlike. Two racing toggles therefore
// resolve to one like and one unlike rather than a duplicate row.
func (r *likeRepository) Toggle(messageID int64, userIdentifier string) (bool, int64, error) {
	var liked bool
	var count int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		like := models.Like{MessageID: messageID, UserIdentifier: userIdentifier}
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			// Row was already there: this toggle is an unlike.
			if err := tx.Where("message_id = ? AND user_identifier = ?", messageID, userIdentifier).
				Delete(&models.Like{}).Error; err != nil {
				return err
			}
			liked = false
		} else {
			liked = true
		}

		return tx.Model(&models.Like{}).Where("message_id = ?", messageID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}

	return liked, count, nil
}
