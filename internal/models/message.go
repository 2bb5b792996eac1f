package models

import "time"

type Message struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ConversationID uint         `gorm:"index;not null" json:"conversation_id"`
	Conversation   Conversation `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	SenderID uint `gorm:"not null" json:"sender_id"`
	Sender   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Body string `gorm:"size:2000;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
}
