package booking

import (
	"context"

	"github.com/Dmast1/bookingart-api/internal/audit"
	domain "github.com/Dmast1/bookingart-api/internal/domain/booking"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/timezone"
)

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute withdraws the client's own request.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	clientID uint,
	bookingID uint,
) (*models.BookingRequest, error) {

	br, err := uc.repo.GetBookingForClient(ctx, bookingID, clientID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(br.Provider.Timezone)
	if err := domain.Cancel(br, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, br); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "booking_cancelled",
		Entity:   "booking_request",
		EntityID: &br.ID,
	})

	return br, nil
}
