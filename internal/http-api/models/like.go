package models

import "time"

// Like records one user identifier liking one message. The composite unique
// index is the hard invariant: at most one row per (message_id,
// user_identifier) pair, ever. Toggling leans on it under concurrency.
type Like struct {
	ID             int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MessageID      int64     `json:"message_id" gorm:"not null;uniqueIndex:idx_likes_message_user"`
	UserIdentifier string    `json:"user_identifier" gorm:"not null;uniqueIndex:idx_likes_message_user"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`

	Message Message `json:"-" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
}

func (Like) TableName() string {
	return "likes"
}
