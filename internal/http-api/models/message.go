package models

import "time"

// Message is one anonymous board post. Timestamp is milliseconds since epoch,
// assigned server-side at insert; retention filtering and ordering run on it,
// not on CreatedAt.
type Message struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Text      string    `json:"text" gorm:"not null;type:text"`
	Author    string    `json:"author" gorm:"not null;default:Anonymous"`
	Category  string    `json:"category" gorm:"not null"`
	Timestamp int64     `json:"timestamp" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
