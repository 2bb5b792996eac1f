package models

import "time"

type Conversation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"uniqueIndex:idx_client_provider;not null" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	ProviderID uint     `gorm:"uniqueIndex:idx_client_provider;not null" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"provider"`

	// Optional link to the booking the chat is about.
	BookingRequestID *uint           `json:"booking_request_id"`
	BookingRequest   *BookingRequest `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Poll ordering key, bumped on every message.
	LastMessageAt time.Time `gorm:"index" json:"last_message_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
