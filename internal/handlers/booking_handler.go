package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/Dmast1/bookingart-api/internal/domain/booking"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/httpresp"
	"github.com/Dmast1/bookingart-api/internal/models"
	usecase "github.com/Dmast1/bookingart-api/internal/usecase/booking"
)

type BookingHandler struct {
	db     *gorm.DB
	repo   domain.Repository
	create *usecase.CreateBooking
	answer *usecase.AnswerBooking
	cancel *usecase.CancelBooking
}

func NewBookingHandler(
	db *gorm.DB,
	repo domain.Repository,
	create *usecase.CreateBooking,
	answer *usecase.AnswerBooking,
	cancel *usecase.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		db:     db,
		repo:   repo,
		create: create,
		answer: answer,
		cancel: cancel,
	}
}

type CreateBookingRequest struct {
	ProviderID uint   `json:"provider_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Message    string `json:"message"`
}

// Create files a booking request on a free or partial day.
func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datele trimise nu sunt valide.")
		return
	}

	br, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		ProviderID: req.ProviderID,
		ClientID:   currentUserID(c),
		Date:       req.Date,
		Message:    req.Message,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "provider_not_found"):
			httperr.NotFound(c, "provider_not_found", "Furnizorul nu a fost găsit.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data trimisă nu este validă.")
		case httperr.IsBusiness(err, "day_not_bookable"):
			httperr.BadRequest(c, "day_not_bookable", "Ziua aleasă nu poate fi rezervată.")
		default:
			httperr.Internal(c, "failed_to_create_booking", "Nu am putut crea cererea de rezervare.")
		}
		return
	}

	c.JSON(http.StatusCreated, br)
}

// ListMine returns the client's own requests, newest first.
func (h *BookingHandler) ListMine(c *gin.Context) {
	bookings, err := h.repo.ListBookingsForClient(c.Request.Context(), currentUserID(c))
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Nu am putut încărca rezervările.")
		return
	}
	httpresp.List(c, bookings)
}

// Cancel withdraws the client's own pending or accepted request.
func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Identificatorul rezervării nu este valid.")
		return
	}

	br, err := h.cancel.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, br)
}

// --------- Provider inbox ---------

func (h *BookingHandler) ListInbox(c *gin.Context) {
	provider, err := providerForUser(h.db, currentUserID(c))
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	bookings, err := h.repo.ListBookingsForProvider(c.Request.Context(), provider.ID, c.Query("status"))
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Nu am putut încărca cererile.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) Accept(c *gin.Context) {
	h.answerBooking(c, h.answer.Accept)
}

func (h *BookingHandler) Decline(c *gin.Context) {
	h.answerBooking(c, h.answer.Decline)
}

func (h *BookingHandler) answerBooking(
	c *gin.Context,
	answer func(ctx context.Context, providerID, providerUserID, bookingID uint) (*models.BookingRequest, error),
) {
	userID := currentUserID(c)

	provider, err := providerForUser(h.db, userID)
	if err != nil {
		httperr.NotFound(c, "provider_not_found", "Profilul de furnizor nu există încă.")
		return
	}

	id, ok := paramUint(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Identificatorul rezervării nu este valid.")
		return
	}

	br, err := answer(c.Request.Context(), provider.ID, userID, id)
	if err != nil {
		h.writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, br)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Cererea de rezervare nu a fost găsită.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Cererea este într-o stare care nu permite acțiunea.")
	default:
		httperr.Internal(c, "failed_to_update_booking", "Nu am putut actualiza cererea.")
	}
}
