package models

import (
	"time"

	"gorm.io/datatypes"
)

type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DisplayName string `gorm:"size:100;not null" json:"display_name"`
	Slug        string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	City        string `gorm:"size:100" json:"city"`
	Bio         string `gorm:"size:2000" json:"bio"`

	// Canonical category keys, deduplicated and sorted before persist.
	Categories datatypes.JSON `gorm:"type:jsonb" json:"categories"`

	BasePrice     float64 `json:"base_price"`
	CoverImageURL string  `gorm:"size:500" json:"cover_image_url"`
	Timezone      string  `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
