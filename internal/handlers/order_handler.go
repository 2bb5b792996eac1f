package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Dmast1/bookingart-api/internal/audit"
	"github.com/Dmast1/bookingart-api/internal/domain/ticketing"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/httpresp"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/payments"
)

type OrderHandler struct {
	db      *gorm.DB
	gateway *payments.Gateway
	audit   *audit.Dispatcher
}

func NewOrderHandler(db *gorm.DB, gateway *payments.Gateway, dispatcher *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{db: db, gateway: gateway, audit: dispatcher}
}

type CreateOrderRequest struct {
	EventID  uint `json:"event_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// Create reserves tickets and opens a checkout preference. The seat count
// is taken inside the transaction; the payment confirmation only flips the
// order status.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	var order models.TicketOrder
	var ev models.Event

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND published = ?", req.EventID, true).
			First(&ev).Error; err != nil {
			return httperr.ErrBusiness("event_not_found")
		}

		if !ticketing.CanSell(ev.Capacity, ev.TicketsSold, req.Quantity) {
			return httperr.ErrBusiness("sold_out")
		}

		ev.TicketsSold += req.Quantity
		if err := tx.Save(&ev).Error; err != nil {
			return err
		}

		order = models.TicketOrder{
			EventID:  ev.ID,
			BuyerID:  userID,
			Quantity: req.Quantity,
			Amount:   ev.TicketPrice * float64(req.Quantity),
			Code:     uuid.NewString(),
			Status:   payments.OrderPending,
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "event_not_found"):
			httperr.NotFound(c, "event_not_found", "Evenimentul nu a fost găsit.")
		case httperr.IsBusiness(err, "sold_out"):
			httperr.BadRequest(c, "sold_out", "Nu mai sunt suficiente bilete disponibile.")
		default:
			httperr.Internal(c, "failed_to_create_order", "Nu am putut crea comanda.")
		}
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "ticket_order_created",
		Entity:   "ticket_order",
		EntityID: &order.ID,
	})

	resp := gin.H{"order": order}

	pref, err := h.gateway.CreatePreference(c.Request.Context(), &order, &ev)
	switch {
	case err == payments.ErrNotConfigured:
		// Checkout runs without a payment link in local setups.
	case err != nil:
		httperr.Internal(c, "failed_to_create_preference", "Nu am putut iniția plata.")
		return
	default:
		h.db.Model(&order).Update("preference_id", pref.PreferenceID)
		resp["init_point"] = pref.InitPoint
	}

	c.JSON(http.StatusCreated, resp)
}

// ListMine returns the buyer's orders, newest first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	var orders []models.TicketOrder
	if err := h.db.
		Preload("Event").
		Where("buyer_id = ?", currentUserID(c)).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Nu am putut încărca comenzile.")
		return
	}

	httpresp.List(c, orders)
}

// Webhook handles Mercado Pago payment notifications. Anything that is not
// a payment event, or that we cannot resolve, is acknowledged with 200 so
// the gateway stops retrying.
func (h *OrderHandler) Webhook(c *gin.Context) {
	if c.Query("type") != "payment" {
		c.Status(http.StatusOK)
		return
	}

	paymentID, err := strconv.Atoi(c.Query("data.id"))
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	result, err := h.gateway.LookupPayment(c.Request.Context(), paymentID)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	var order models.TicketOrder
	if err := h.db.Where("code = ?", result.OrderCode).First(&order).Error; err != nil {
		c.Status(http.StatusOK)
		return
	}

	status := payments.MapPaymentStatus(result.Status)
	if order.Status != payments.OrderPending || status == payments.OrderPending {
		c.Status(http.StatusOK)
		return
	}

	now := time.Now()
	switch status {
	case payments.OrderPaid:
		order.Status = payments.OrderPaid
		order.PaidAt = &now
	case payments.OrderCancelled:
		order.Status = payments.OrderCancelled
		order.CancelledAt = &now
		// Seats go back on sale.
		h.db.Model(&models.Event{}).
			Where("id = ?", order.EventID).
			Update("tickets_sold", gorm.Expr("tickets_sold - ?", order.Quantity))
	}

	if err := h.db.Save(&order).Error; err != nil {
		httperr.Internal(c, "failed_to_update_order", "Nu am putut actualiza comanda.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "ticket_order_" + status,
		Entity:   "ticket_order",
		EntityID: &order.ID,
	})

	c.Status(http.StatusOK)
}
