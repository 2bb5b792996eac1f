package models

import "time"

// AvailabilityRule holds one calendar day's booking state for one provider.
// At most one rule per (provider, day); the availability form overwrites,
// never deletes.
type AvailabilityRule struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"uniqueIndex:idx_provider_day;not null" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Day at UTC midnight.
	Day time.Time `gorm:"uniqueIndex:idx_provider_day;type:date;not null" json:"day"`

	Status  string `gorm:"size:10;not null" json:"status"`
	FullDay bool   `json:"full_day"`

	// "HH:MM", empty when FullDay is set.
	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	// nil means "not set"; an explicit zero is never stored.
	PriceGross     *float64 `json:"price_gross"`
	DepositPercent *int     `json:"deposit_percent"`
	MinHours       *int     `json:"min_hours"`

	Note string `gorm:"size:500" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
