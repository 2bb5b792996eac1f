package models

import "time"

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"index;not null" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"provider"`

	Title       string `gorm:"size:150;not null" json:"title"`
	Slug        string `gorm:"size:150;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"size:2000" json:"description"`
	Venue       string `gorm:"size:200" json:"venue"`
	City        string `gorm:"size:100" json:"city"`
	PosterURL   string `gorm:"size:500" json:"poster_url"`

	StartsAt time.Time `gorm:"not null" json:"starts_at"`

	TicketPrice float64 `json:"ticket_price"`
	Capacity    int     `json:"capacity"`
	TicketsSold int     `gorm:"default:0" json:"tickets_sold"`

	Published bool `gorm:"default:false" json:"published"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
