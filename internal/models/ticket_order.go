package models

import "time"

type TicketOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID uint  `gorm:"index;not null" json:"event_id"`
	Event   Event `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"event"`

	BuyerID uint `gorm:"index;not null" json:"buyer_id"`
	Buyer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"buyer"`

	Quantity int     `gorm:"not null" json:"quantity"`
	Amount   float64 `gorm:"not null" json:"amount"`

	// Printed on the ticket, checked at the door.
	Code string `gorm:"size:36;uniqueIndex;not null" json:"code"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Mercado Pago checkout preference backing this order.
	PreferenceID string `gorm:"size:100" json:"preference_id"`

	PaidAt      *time.Time `json:"paid_at"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
