package booking

import (
	"context"
	"strings"

	"github.com/Dmast1/bookingart-api/internal/audit"
	avdomain "github.com/Dmast1/bookingart-api/internal/domain/availability"
	domain "github.com/Dmast1/bookingart-api/internal/domain/booking"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
	"github.com/Dmast1/bookingart-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ProviderID uint
	ClientID   uint

	// Event day, strict YYYY-MM-DD, taken from the booking-intent URL.
	Date    string
	Message string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier *notify.Notifier
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier *notify.Notifier,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.BookingRequest, error) {

	// --------------------------------------------------
	// 1. Provider
	// --------------------------------------------------
	if _, err := uc.repo.GetProviderByID(ctx, in.ProviderID); err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	// --------------------------------------------------
	// 2. Day
	// --------------------------------------------------
	day, ok := avdomain.ParseDay(in.Date)
	if !ok {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 3. Availability gate: only free/partial days accept intent.
	// A day without a rule is "no information" on the public calendar
	// and is not bookable.
	// --------------------------------------------------
	rule, err := uc.repo.GetRuleForDay(ctx, in.ProviderID, day)
	if err != nil {
		return nil, httperr.ErrBusiness("day_not_bookable")
	}
	if !avdomain.CanTarget(avdomain.Status(rule.Status)) {
		return nil, httperr.ErrBusiness("day_not_bookable")
	}

	// --------------------------------------------------
	// 4. Client
	// --------------------------------------------------
	client, err := uc.repo.GetUserByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Create
	// --------------------------------------------------
	br := &models.BookingRequest{
		ProviderID: in.ProviderID,
		ClientID:   client.ID,
		Client:     *client,
		EventDate:  day,
		Message:    strings.TrimSpace(in.Message),
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, br); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6. Audit + notification
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "booking_requested",
		Entity:   "booking_request",
		EntityID: &br.ID,
	})

	if providerUser, err := uc.repo.GetProviderUser(ctx, in.ProviderID); err == nil {
		uc.notifier.BookingRequested(providerUser, br)
	}

	return br, nil
}
