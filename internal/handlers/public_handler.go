package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/cache"
	"github.com/Dmast1/bookingart-api/internal/calendar"
	"github.com/Dmast1/bookingart-api/internal/categories"
	domain "github.com/Dmast1/bookingart-api/internal/domain/availability"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/httpresp"
	"github.com/Dmast1/bookingart-api/internal/models"
)

type PublicHandler struct {
	db    *gorm.DB
	repo  domain.Repository
	cache *cache.Cache
}

func NewPublicHandler(db *gorm.DB, repo domain.Repository, cc *cache.Cache) *PublicHandler {
	return &PublicHandler{db: db, repo: repo, cache: cc}
}

// categoryContainsLiteral builds the jsonb containment operand for the
// category filter. Normalized keys can still carry arbitrary characters
// (unknown labels pass through), so the literal goes through the JSON
// encoder instead of string formatting.
func categoryContainsLiteral(key string) string {
	b, _ := json.Marshal([]string{key})
	return string(b)
}

// ListProviders filters the public catalogue. The category filter takes a
// label or a key; both normalize to the same canonical key.
func (h *PublicHandler) ListProviders(c *gin.Context) {
	q := h.db.Model(&models.Provider{})

	if raw := c.Query("category"); raw != "" {
		q = q.Where("categories @> ?", categoryContainsLiteral(categories.Normalize(raw)))
	}

	if city := c.Query("city"); city != "" {
		q = q.Where("city ILIKE ?", city)
	}

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		q = q.Where("display_name ILIKE ? OR bio ILIKE ?", like, like)
	}

	var providers []models.Provider
	if err := q.Order("display_name asc").Limit(100).Find(&providers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_providers", "Nu am putut încărca furnizorii.")
		return
	}

	httpresp.List(c, providers)
}

// GetProfile returns the public profile plus the month-grid calendar built
// from the provider's saved availability.
func (h *PublicHandler) GetProfile(c *gin.Context) {
	slug := c.Param("slug")

	provider, err := h.repo.GetProviderBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Furnizorul nu a fost găsit.")
		return
	}

	entries, err := h.availabilityEntries(c, provider.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Nu am putut încărca disponibilitatea.")
		return
	}

	grids := calendar.BuildPublicGrids(entries, func(date string) string {
		return fmt.Sprintf("/rezerva/%s?date=%s", provider.Slug, date)
	})

	c.JSON(http.StatusOK, gin.H{
		"provider": provider,
		"months":   grids,
	})
}

// Availability returns the raw day/status list that the profile calendar
// is built from, cached for five minutes.
func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")

	provider, err := h.repo.GetProviderBySlug(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Furnizorul nu a fost găsit.")
		return
	}

	entries, err := h.availabilityEntries(c, provider.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Nu am putut încărca disponibilitatea.")
		return
	}

	httpresp.List(c, entries)
}

func (h *PublicHandler) availabilityEntries(c *gin.Context, providerID uint) ([]calendar.DayStatus, error) {
	ctx := c.Request.Context()
	key := availabilityCacheKey(providerID)

	var entries []calendar.DayStatus
	if h.cache.GetJSON(ctx, key, &entries) {
		return entries, nil
	}

	rules, err := h.repo.ListRules(ctx, providerID)
	if err != nil {
		return nil, err
	}

	entries = make([]calendar.DayStatus, 0, len(rules))
	for _, r := range rules {
		entries = append(entries, calendar.DayStatus{
			Date:   r.Day.Format(domain.DayFormat),
			Status: domain.Status(r.Status),
		})
	}

	h.cache.SetJSON(ctx, key, entries, 5*time.Minute)
	return entries, nil
}
