package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/httpresp"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/validators"
)

type EventHandler struct {
	db *gorm.DB
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{db: db}
}

type EventRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Venue       string  `json:"venue"`
	City        string  `json:"city"`
	StartsAt    string  `json:"starts_at" binding:"required"`
	TicketPrice float64 `json:"ticket_price"`
	Capacity    int     `json:"capacity"`
}

func (r *EventRequest) startsAt() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, r.StartsAt)
	return t, err == nil
}

// --------- Provider side ---------

func (h *EventHandler) CreateMine(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	startsAt, ok := req.startsAt()
	if !ok {
		httperr.BadRequest(c, "invalid_starts_at", "Data de început nu este validă.")
		return
	}

	if req.Capacity < 0 {
		httperr.BadRequest(c, "invalid_capacity", "Capacitatea nu poate fi negativă.")
		return
	}

	ev := models.Event{
		ProviderID:  provider.ID,
		Title:       req.Title,
		Slug:        validators.Slugify(req.Title),
		Description: req.Description,
		Venue:       req.Venue,
		City:        req.City,
		StartsAt:    startsAt,
		TicketPrice: req.TicketPrice,
		Capacity:    req.Capacity,
	}

	if err := h.db.Create(&ev).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.BadRequest(c, "slug_taken", "Există deja un eveniment cu acest titlu.")
			return
		}
		httperr.Internal(c, "failed_to_create_event", "Nu am putut crea evenimentul.")
		return
	}

	c.JSON(http.StatusCreated, ev)
}

func (h *EventHandler) UpdateMine(c *gin.Context) {
	ev, ok := h.ownEvent(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	startsAt, okTime := req.startsAt()
	if !okTime {
		httperr.BadRequest(c, "invalid_starts_at", "Data de început nu este validă.")
		return
	}

	if req.Capacity < ev.TicketsSold {
		httperr.BadRequest(c, "capacity_below_sold", "Capacitatea nu poate scădea sub biletele deja vândute.")
		return
	}

	ev.Title = req.Title
	ev.Description = req.Description
	ev.Venue = req.Venue
	ev.City = req.City
	ev.StartsAt = startsAt
	ev.TicketPrice = req.TicketPrice
	ev.Capacity = req.Capacity

	if err := h.db.Save(ev).Error; err != nil {
		httperr.Internal(c, "failed_to_update_event", "Nu am putut salva evenimentul.")
		return
	}

	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) PublishMine(c *gin.Context) {
	ev, ok := h.ownEvent(c)
	if !ok {
		return
	}

	ev.Published = true
	if err := h.db.Save(ev).Error; err != nil {
		httperr.Internal(c, "failed_to_publish_event", "Nu am putut publica evenimentul.")
		return
	}

	c.JSON(http.StatusOK, ev)
}

func (h *EventHandler) ListMine(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	var events []models.Event
	if err := h.db.
		Where("provider_id = ?", provider.ID).
		Order("starts_at desc").
		Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_list_events", "Nu am putut încărca evenimentele.")
		return
	}

	httpresp.List(c, events)
}

func (h *EventHandler) ownEvent(c *gin.Context) (*models.Event, bool) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return nil, false
	}

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_event_id", "Identificatorul evenimentului nu este valid.")
		return nil, false
	}

	var ev models.Event
	if err := h.db.
		Where("id = ? AND provider_id = ?", id, provider.ID).
		First(&ev).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Evenimentul nu a fost găsit.")
		return nil, false
	}

	return &ev, true
}

// --------- Public side ---------

// ListPublic returns published upcoming events, soonest first.
func (h *EventHandler) ListPublic(c *gin.Context) {
	q := h.db.Model(&models.Event{}).
		Where("published = ?", true).
		Where("starts_at >= ?", time.Now())

	if city := c.Query("city"); city != "" {
		q = q.Where("city ILIKE ?", city)
	}

	var events []models.Event
	if err := q.Preload("Provider").Order("starts_at asc").Limit(100).Find(&events).Error; err != nil {
		httperr.Internal(c, "failed_to_list_events", "Nu am putut încărca evenimentele.")
		return
	}

	httpresp.List(c, events)
}

func (h *EventHandler) GetPublic(c *gin.Context) {
	var ev models.Event
	if err := h.db.
		Preload("Provider").
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&ev).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Evenimentul nu a fost găsit.")
		return
	}

	c.JSON(http.StatusOK, ev)
}
