package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dmast1/bookingart-api/internal/audit"
	domain "github.com/Dmast1/bookingart-api/internal/domain/availability"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
)

type fakeRepo struct {
	rules   map[string]*models.AvailabilityRule
	failOn  string
	upserts int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rules: map[string]*models.AvailabilityRule{}}
}

func (f *fakeRepo) GetProviderByID(ctx context.Context, id uint) (*models.Provider, error) {
	return &models.Provider{ID: id}, nil
}

func (f *fakeRepo) GetProviderBySlug(ctx context.Context, slug string) (*models.Provider, error) {
	return &models.Provider{Slug: slug}, nil
}

func (f *fakeRepo) UpsertRule(ctx context.Context, rule *models.AvailabilityRule) error {
	key := rule.Day.Format(domain.DayFormat)
	if key == f.failOn {
		return errors.New("connection reset")
	}
	f.upserts++
	f.rules[key] = rule
	return nil
}

func (f *fakeRepo) GetRule(ctx context.Context, providerID uint, day time.Time) (*models.AvailabilityRule, error) {
	if r, ok := f.rules[day.Format(domain.DayFormat)]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) ListRules(ctx context.Context, providerID uint) ([]models.AvailabilityRule, error) {
	return nil, nil
}

func (f *fakeRepo) ListRulesForPeriod(ctx context.Context, providerID uint, from, to time.Time) ([]models.AvailabilityRule, error) {
	return nil, nil
}

func newApplyRule(repo domain.Repository) *ApplyRule {
	return NewApplyRule(repo, audit.NewDispatcher(audit.New(nil)))
}

func TestApplyRule_InvalidDateSavesNothing(t *testing.T) {
	repo := newFakeRepo()
	uc := newApplyRule(repo)

	_, err := uc.Execute(context.Background(), ApplyRuleInput{
		ProviderID: 1,
		Date:       "01/06/2025",
		ApplyMode:  "single",
		Rule:       domain.RuleInput{Status: "free"},
	})

	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("expected invalid_date, got %v", err)
	}
	if repo.upserts != 0 {
		t.Fatalf("expected no writes, got %d", repo.upserts)
	}
}

func TestApplyRule_SingleFullDay(t *testing.T) {
	repo := newFakeRepo()
	uc := newApplyRule(repo)

	applied, err := uc.Execute(context.Background(), ApplyRuleInput{
		ProviderID: 7,
		Date:       "2025-06-01",
		ApplyMode:  "single",
		Rule: domain.RuleInput{
			Status:    "free",
			FullDay:   true,
			StartTime: "10:00",
			EndTime:   "18:00",
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(applied) != 1 || applied[0] != "2025-06-01" {
		t.Fatalf("expected exactly [2025-06-01], got %v", applied)
	}

	rec := repo.rules["2025-06-01"]
	if rec == nil {
		t.Fatalf("expected upserted record")
	}
	if rec.StartTime != "" || rec.EndTime != "" {
		t.Fatalf("full-day rule must persist empty times, got %q-%q", rec.StartTime, rec.EndTime)
	}
	if rec.ProviderID != 7 {
		t.Fatalf("expected provider 7, got %d", rec.ProviderID)
	}
}

func TestApplyRule_RangeUpsertsEveryDay(t *testing.T) {
	repo := newFakeRepo()
	uc := newApplyRule(repo)

	applied, err := uc.Execute(context.Background(), ApplyRuleInput{
		ProviderID: 1,
		Date:       "2025-01-01",
		ApplyMode:  "range",
		Bounds: domain.Bounds{
			RangeStart: "2025-01-01",
			RangeEnd:   "2025-01-03",
		},
		Rule: domain.RuleInput{Status: "busy"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(applied) != 3 || repo.upserts != 3 {
		t.Fatalf("expected 3 upserts, got applied=%v upserts=%d", applied, repo.upserts)
	}
}

func TestApplyRule_PartialFailureKeepsPrefix(t *testing.T) {
	repo := newFakeRepo()
	repo.failOn = "2025-01-03"
	uc := newApplyRule(repo)

	applied, err := uc.Execute(context.Background(), ApplyRuleInput{
		ProviderID: 1,
		Date:       "2025-01-01",
		ApplyMode:  "range",
		Bounds: domain.Bounds{
			RangeStart: "2025-01-01",
			RangeEnd:   "2025-01-04",
		},
		Rule: domain.RuleInput{Status: "free"},
	})

	if err == nil {
		t.Fatalf("expected error on the third day")
	}
	// No compensating transaction: the first two days stay committed.
	if len(applied) != 2 || repo.upserts != 2 {
		t.Fatalf("expected prefix of 2 applied days, got %v", applied)
	}
}
