package models

import "time"

type BookingRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"index;not null" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"provider"`

	ClientID uint `gorm:"index;not null" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	// Day of the event at UTC midnight.
	EventDate time.Time `gorm:"type:date;not null" json:"event_date"`
	Message   string    `gorm:"size:1000" json:"message"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	AcceptedAt  *time.Time `json:"accepted_at"`
	DeclinedAt  *time.Time `json:"declined_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
