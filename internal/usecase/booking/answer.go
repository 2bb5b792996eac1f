package booking

import (
	"context"
	"time"

	"github.com/Dmast1/bookingart-api/internal/audit"
	domain "github.com/Dmast1/bookingart-api/internal/domain/booking"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/notify"
	"github.com/Dmast1/bookingart-api/internal/timezone"
)

type AnswerBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Notifier
}

func NewAnswerBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
) *AnswerBooking {
	return &AnswerBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

// Accept answers a pending request on behalf of the provider.
func (uc *AnswerBooking) Accept(
	ctx context.Context,
	providerID uint,
	providerUserID uint,
	bookingID uint,
) (*models.BookingRequest, error) {
	return uc.answer(ctx, providerID, providerUserID, bookingID, domain.Accept, "booking_accepted")
}

// Decline answers a pending request on behalf of the provider.
func (uc *AnswerBooking) Decline(
	ctx context.Context,
	providerID uint,
	providerUserID uint,
	bookingID uint,
) (*models.BookingRequest, error) {
	return uc.answer(ctx, providerID, providerUserID, bookingID, domain.Decline, "booking_declined")
}

func (uc *AnswerBooking) answer(
	ctx context.Context,
	providerID uint,
	providerUserID uint,
	bookingID uint,
	action func(*models.BookingRequest, time.Time) error,
	auditAction string,
) (*models.BookingRequest, error) {

	shop, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	br, err := uc.repo.GetBookingForProvider(ctx, bookingID, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := action(br, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, br); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &providerUserID,
		Action:   auditAction,
		Entity:   "booking_request",
		EntityID: &br.ID,
	})

	if client, err := uc.repo.GetUserByID(ctx, br.ClientID); err == nil {
		uc.notifier.BookingAnswered(client, br)
	}

	return br, nil
}
