package models

import "time"

// Comment belongs to a message and may reply to another comment. ParentID is
// nil for top-level comments. The read contract is exactly two levels deep;
// the service layer rejects replies to replies so no row can fall outside it.
type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MessageID int64     `json:"message_id" gorm:"not null"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	Author    string    `json:"author" gorm:"not null;default:Anonymous"`
	ParentID  *int64    `json:"parent_id"`
	Timestamp int64     `json:"timestamp" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Message Message  `json:"-" gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE;"`
	Parent  *Comment `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}
