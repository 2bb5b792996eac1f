package availability

import (
	"context"
	"fmt"

	"github.com/Dmast1/bookingart-api/internal/audit"
	domain "github.com/Dmast1/bookingart-api/internal/domain/availability"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ApplyRuleInput struct {
	ProviderID uint

	// Base date, strict YYYY-MM-DD.
	Date string

	ApplyMode string
	Bounds    domain.Bounds

	Rule domain.RuleInput
}

// ======================================================
// USE CASE
// ======================================================

type ApplyRule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewApplyRule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ApplyRule {
	return &ApplyRule{
		repo:  repo,
		audit: audit,
	}
}

// Execute expands the submitted rule into concrete days and upserts each
// one keyed by (provider, day). The loop is a batch of idempotent upserts,
// not a transaction: if the Nth write fails, the first N-1 days stay
// committed and the error is returned as-is.
func (uc *ApplyRule) Execute(
	ctx context.Context,
	in ApplyRuleInput,
) ([]string, error) {

	// --------------------------------------------------
	// 1. Base date (hard requirement, nothing saved on failure)
	// --------------------------------------------------
	base, ok := domain.ParseDay(in.Date)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 2. Rule payload
	// --------------------------------------------------
	rule, ok := domain.NormalizeRule(in.Rule)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// --------------------------------------------------
	// 3. Expansion (invalid bounds degrade to the base date)
	// --------------------------------------------------
	days := domain.ExpandDates(base, domain.ApplyMode(in.ApplyMode), in.Bounds)

	// --------------------------------------------------
	// 4. Upsert loop
	// --------------------------------------------------
	applied := make([]string, 0, len(days))
	for _, day := range days {
		rec := &models.AvailabilityRule{
			ProviderID:     in.ProviderID,
			Day:            day,
			Status:         string(rule.Status),
			FullDay:        rule.FullDay,
			StartTime:      rule.StartTime,
			EndTime:        rule.EndTime,
			PriceGross:     rule.PriceGross,
			DepositPercent: rule.DepositPercent,
			MinHours:       rule.MinHours,
			Note:           rule.Note,
		}

		if err := uc.repo.UpsertRule(ctx, rec); err != nil {
			return applied, fmt.Errorf("upsert day %s: %w", day.Format(domain.DayFormat), err)
		}

		applied = append(applied, day.Format(domain.DayFormat))
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action: "availability_applied",
		Entity: "availability_rule",
		Metadata: map[string]any{
			"provider_id": in.ProviderID,
			"mode":        in.ApplyMode,
			"days":        len(applied),
		},
	})

	return applied, nil
}
