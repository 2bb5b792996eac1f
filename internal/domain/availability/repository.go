package availability

import (
	"context"
	"time"

	"github.com/Dmast1/bookingart-api/internal/models"
)

type Repository interface {
	// -------- Provider --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetProviderBySlug(
		ctx context.Context,
		slug string,
	) (*models.Provider, error)

	// -------- Rules (upsert / read) --------
	UpsertRule(
		ctx context.Context,
		rule *models.AvailabilityRule,
	) error

	GetRule(
		ctx context.Context,
		providerID uint,
		day time.Time,
	) (*models.AvailabilityRule, error)

	ListRules(
		ctx context.Context,
		providerID uint,
	) ([]models.AvailabilityRule, error)

	ListRulesForPeriod(
		ctx context.Context,
		providerID uint,
		from time.Time,
		to time.Time,
	) ([]models.AvailabilityRule, error)
}
