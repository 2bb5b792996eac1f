package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/categories"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/timezone"
	"github.com/Dmast1/bookingart-api/internal/validators"
)

type ProviderHandler struct {
	db *gorm.DB
}

func NewProviderHandler(db *gorm.DB) *ProviderHandler {
	return &ProviderHandler{db: db}
}

type UpsertProviderRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Slug        string `json:"slug"`
	City        string `json:"city"`
	Bio         string `json:"bio"`

	// Free-form labels as typed by the provider; normalized to keys.
	Categories []string `json:"categories"`

	BasePrice float64 `json:"base_price"`
	Timezone  string  `json:"timezone"`
}

// UpsertMine creates or updates the provider profile of the logged-in user.
func (h *ProviderHandler) UpsertMine(c *gin.Context) {
	userID := currentUserID(c)

	var req UpsertProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = validators.Slugify(req.DisplayName)
	}
	if !validators.IsSlugValid(slug) {
		httperr.BadRequest(c, "invalid_slug", "Slug-ul trebuie să conțină doar litere mici, cifre și cratime.")
		return
	}

	tz := req.Timezone
	if tz == "" {
		tz = timezone.DefaultTimezone
	}
	if !timezone.IsValid(tz) {
		httperr.BadRequest(c, "invalid_timezone", "Fusul orar nu este valid.")
		return
	}

	keys := categories.CollectKeys(req.Categories)
	keysJSON, err := json.Marshal(keys)
	if err != nil {
		httperr.Internal(c, "failed_to_encode_categories", "Nu am putut salva categoriile.")
		return
	}

	var provider models.Provider
	err = h.db.Where("user_id = ?", userID).First(&provider).Error

	switch {
	case err == gorm.ErrRecordNotFound:
		provider = models.Provider{
			UserID:      userID,
			DisplayName: req.DisplayName,
			Slug:        slug,
			City:        req.City,
			Bio:         req.Bio,
			Categories:  datatypes.JSON(keysJSON),
			BasePrice:   req.BasePrice,
			Timezone:    tz,
		}
		if err := h.db.Create(&provider).Error; err != nil {
			if httperr.IsUniqueViolation(err) {
				httperr.BadRequest(c, "slug_taken", "Acest slug este deja folosit.")
				return
			}
			httperr.Internal(c, "failed_to_create_provider", "Nu am putut crea profilul.")
			return
		}
		c.JSON(http.StatusCreated, provider)
		return

	case err != nil:
		httperr.Internal(c, "internal_error", "A apărut o eroare internă.")
		return
	}

	provider.DisplayName = req.DisplayName
	provider.Slug = slug
	provider.City = req.City
	provider.Bio = req.Bio
	provider.Categories = datatypes.JSON(keysJSON)
	provider.BasePrice = req.BasePrice
	provider.Timezone = tz

	if err := h.db.Save(&provider).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "slug_taken", "Acest slug este deja folosit.")
			return
		}
		httperr.Internal(c, "failed_to_update_provider", "Nu am putut salva profilul.")
		return
	}

	c.JSON(http.StatusOK, provider)
}

func (h *ProviderHandler) GetMine(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}
	c.JSON(http.StatusOK, provider)
}
