package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/Dmast1/bookingart-api/internal/domain/availability"
	"github.com/Dmast1/bookingart-api/internal/models"
)

type AvailabilityGormRepository struct {
	db *gorm.DB
}

func NewAvailabilityGormRepository(db *gorm.DB) *AvailabilityGormRepository {
	return &AvailabilityGormRepository{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *AvailabilityGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AvailabilityGormRepository) GetProviderBySlug(
	ctx context.Context,
	slug string,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// --------------------------------------------------
// Rules
// --------------------------------------------------

// UpsertRule writes one day keyed by (provider_id, day). The conflict
// target matches idx_provider_day, so re-submitting the form overwrites
// instead of duplicating.
func (r *AvailabilityGormRepository) UpsertRule(
	ctx context.Context,
	rule *models.AvailabilityRule,
) error {

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "provider_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"status",
				"full_day",
				"start_time",
				"end_time",
				"price_gross",
				"deposit_percent",
				"min_hours",
				"note",
				"updated_at",
			}),
		}).
		Create(rule).Error
}

func (r *AvailabilityGormRepository) GetRule(
	ctx context.Context,
	providerID uint,
	day time.Time,
) (*models.AvailabilityRule, error) {

	var rule models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND day = ?", providerID, day).
		First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *AvailabilityGormRepository) ListRules(
	ctx context.Context,
	providerID uint,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("day ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *AvailabilityGormRepository) ListRulesForPeriod(
	ctx context.Context,
	providerID uint,
	from time.Time,
	to time.Time,
) ([]models.AvailabilityRule, error) {

	var rules []models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND day >= ? AND day < ?", providerID, from, to).
		Order("day ASC").
		Find(&rules).Error; err != nil {
		return nil, err
	}
	return rules, nil
}

// Compile-time check
var _ domain.Repository = (*AvailabilityGormRepository)(nil)
