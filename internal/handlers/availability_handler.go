package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/cache"
	"github.com/Dmast1/bookingart-api/internal/calendar"
	domain "github.com/Dmast1/bookingart-api/internal/domain/availability"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/timezone"
	usecase "github.com/Dmast1/bookingart-api/internal/usecase/availability"
)

type AvailabilityHandler struct {
	db        *gorm.DB
	applyRule *usecase.ApplyRule
	repo      domain.Repository
	cache     *cache.Cache
}

func NewAvailabilityHandler(
	db *gorm.DB,
	applyRule *usecase.ApplyRule,
	repo domain.Repository,
	cc *cache.Cache,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		db:        db,
		applyRule: applyRule,
		repo:      repo,
		cache:     cc,
	}
}

func availabilityCacheKey(providerID uint) string {
	return fmt.Sprintf("availability:%d", providerID)
}

// The day form posts exactly these fields; checkboxes arrive as "on".
type ApplyRuleForm struct {
	Date string `form:"date" binding:"required"`

	Status  string `form:"status" binding:"required"`
	FullDay string `form:"full_day"`

	StartTime string `form:"start_time"`
	EndTime   string `form:"end_time"`

	PriceGross     string `form:"price_gross"`
	DepositPercent string `form:"deposit_percent"`
	MinHours       string `form:"min_hours"`
	Note           string `form:"note"`

	ApplyMode string `form:"apply_mode"`

	RangeStart string `form:"range_start"`
	RangeEnd   string `form:"range_end"`

	WeekdayStart string `form:"weekday_start"`
	WeekdayEnd   string `form:"weekday_end"`
	Weekday      string `form:"weekday"`
}

// Apply saves the submitted day rule, expanded over the selected mode.
func (h *AvailabilityHandler) Apply(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	var form ApplyRuleForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.BadRequest(c, "invalid_request", "Formularul trimis nu este valid.")
		return
	}

	in := usecase.ApplyRuleInput{
		ProviderID: provider.ID,
		Date:       form.Date,
		ApplyMode:  form.ApplyMode,
		Bounds: domain.Bounds{
			RangeStart:   form.RangeStart,
			RangeEnd:     form.RangeEnd,
			WeekdayStart: form.WeekdayStart,
			WeekdayEnd:   form.WeekdayEnd,
			Weekday:      form.Weekday,
		},
		Rule: domain.RuleInput{
			Status:         form.Status,
			FullDay:        form.FullDay == "on" || form.FullDay == "true" || form.FullDay == "1",
			StartTime:      form.StartTime,
			EndTime:        form.EndTime,
			PriceGross:     form.PriceGross,
			DepositPercent: form.DepositPercent,
			MinHours:       form.MinHours,
			Note:           form.Note,
		},
	}

	applied, err := h.applyRule.Execute(c.Request.Context(), in)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data trimisă nu este validă.")
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Statusul trimis nu este valid.")
		default:
			// Days written before the failure stay committed.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error_code":   "failed_to_save_availability",
				"message":      "Salvarea s-a oprit înainte de final.",
				"applied_days": applied,
			})
		}
		return
	}

	h.cache.Delete(c.Request.Context(), availabilityCacheKey(provider.ID))

	c.JSON(http.StatusOK, gin.H{"applied_days": applied})
}

// GetDay returns the saved rule for one day, for form prefill.
func (h *AvailabilityHandler) GetDay(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	day, ok := domain.ParseDay(c.Query("date"))
	if !ok {
		httperr.BadRequest(c, "invalid_date", "Data trimisă nu este validă.")
		return
	}

	rule, err := h.repo.GetRule(c.Request.Context(), provider.ID, day)
	if err != nil {
		httperr.NotFound(c, "rule_not_found", "Nu există nicio regulă pentru această zi.")
		return
	}

	c.JSON(http.StatusOK, rule)
}

// Calendar renders the provider's editing view: the current month and the
// next, every day present and clickable.
func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	now := timezone.NowIn(provider.Timezone)
	from, to := calendar.ProviderWindow(now)

	rules, err := h.repo.ListRulesForPeriod(c.Request.Context(), provider.ID, from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Nu am putut încărca disponibilitatea.")
		return
	}

	entries := make([]calendar.DayStatus, 0, len(rules))
	for _, r := range rules {
		entries = append(entries, calendar.DayStatus{
			Date:   r.Day.Format(domain.DayFormat),
			Status: domain.Status(r.Status),
		})
	}

	grids := calendar.BuildProviderGrids(now, entries, func(date string) string {
		return "/me/availability?date=" + date
	})

	c.JSON(http.StatusOK, gin.H{"months": grids})
}
