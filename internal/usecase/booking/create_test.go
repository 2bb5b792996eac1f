package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Dmast1/bookingart-api/internal/audit"
	avdomain "github.com/Dmast1/bookingart-api/internal/domain/availability"
	"github.com/Dmast1/bookingart-api/internal/httperr"
	"github.com/Dmast1/bookingart-api/internal/models"
)

type fakeRepo struct {
	providers map[uint]*models.Provider
	rules     map[string]*models.AvailabilityRule
	bookings  []*models.BookingRequest
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		providers: map[uint]*models.Provider{},
		rules:     map[string]*models.AvailabilityRule{},
	}
}

func (f *fakeRepo) GetProviderByID(ctx context.Context, id uint) (*models.Provider, error) {
	if p, ok := f.providers[id]; ok {
		return p, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetProviderUser(ctx context.Context, providerID uint) (*models.User, error) {
	return &models.User{ID: 100 + providerID}, nil
}

func (f *fakeRepo) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return &models.User{ID: id, Name: "Client"}, nil
}

func (f *fakeRepo) GetRuleForDay(ctx context.Context, providerID uint, day time.Time) (*models.AvailabilityRule, error) {
	if r, ok := f.rules[day.Format(avdomain.DayFormat)]; ok {
		return r, nil
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) CreateBooking(ctx context.Context, br *models.BookingRequest) error {
	br.ID = uint(len(f.bookings) + 1)
	f.bookings = append(f.bookings, br)
	return nil
}

func (f *fakeRepo) GetBookingForProvider(ctx context.Context, bookingID, providerID uint) (*models.BookingRequest, error) {
	for _, br := range f.bookings {
		if br.ID == bookingID && br.ProviderID == providerID {
			return br, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) GetBookingForClient(ctx context.Context, bookingID, clientID uint) (*models.BookingRequest, error) {
	for _, br := range f.bookings {
		if br.ID == bookingID && br.ClientID == clientID {
			return br, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, br *models.BookingRequest) error {
	return nil
}

func (f *fakeRepo) ListBookingsForProvider(ctx context.Context, providerID uint, status string) ([]models.BookingRequest, error) {
	return nil, nil
}

func (f *fakeRepo) ListBookingsForClient(ctx context.Context, clientID uint) ([]models.BookingRequest, error) {
	return nil, nil
}

func (f *fakeRepo) setRule(day, status string) {
	f.rules[day] = &models.AvailabilityRule{Status: status}
}

func newCreateBooking(repo *fakeRepo) *CreateBooking {
	return NewCreateBooking(repo, audit.NewDispatcher(audit.New(nil)), nil)
}

func TestCreateBookingOnFreeDay(t *testing.T) {
	repo := newFakeRepo()
	repo.providers[1] = &models.Provider{ID: 1, Timezone: "Europe/Bucharest"}
	repo.setRule("2025-06-14", "free")

	uc := newCreateBooking(repo)

	br, err := uc.Execute(context.Background(), CreateBookingInput{
		ProviderID: 1,
		ClientID:   7,
		Date:       "2025-06-14",
		Message:    "  Nuntă, 120 invitați  ",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if br.Status != "pending" {
		t.Fatalf("status = %q, want pending", br.Status)
	}
	if br.Message != "Nuntă, 120 invitați" {
		t.Fatalf("message not trimmed: %q", br.Message)
	}
	if !br.EventDate.Equal(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("event date = %v", br.EventDate)
	}
}

func TestCreateBookingPartialDayAllowed(t *testing.T) {
	repo := newFakeRepo()
	repo.providers[1] = &models.Provider{ID: 1}
	repo.setRule("2025-06-14", "partial")

	uc := newCreateBooking(repo)

	if _, err := uc.Execute(context.Background(), CreateBookingInput{
		ProviderID: 1,
		ClientID:   7,
		Date:       "2025-06-14",
	}); err != nil {
		t.Fatalf("Execute on partial day: %v", err)
	}
}

func TestCreateBookingRejectsBusyDay(t *testing.T) {
	repo := newFakeRepo()
	repo.providers[1] = &models.Provider{ID: 1}
	repo.setRule("2025-06-14", "busy")

	uc := newCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProviderID: 1,
		ClientID:   7,
		Date:       "2025-06-14",
	})
	if !httperr.IsBusiness(err, "day_not_bookable") {
		t.Fatalf("err = %v, want day_not_bookable", err)
	}
	if len(repo.bookings) != 0 {
		t.Fatalf("booking was created on a busy day")
	}
}

func TestCreateBookingRejectsDayWithoutRule(t *testing.T) {
	repo := newFakeRepo()
	repo.providers[1] = &models.Provider{ID: 1}

	uc := newCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProviderID: 1,
		ClientID:   7,
		Date:       "2025-06-14",
	})
	if !httperr.IsBusiness(err, "day_not_bookable") {
		t.Fatalf("err = %v, want day_not_bookable", err)
	}
}

func TestCreateBookingUnknownProvider(t *testing.T) {
	uc := newCreateBooking(newFakeRepo())

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProviderID: 9,
		ClientID:   7,
		Date:       "2025-06-14",
	})
	if !httperr.IsBusiness(err, "provider_not_found") {
		t.Fatalf("err = %v, want provider_not_found", err)
	}
}

func TestCreateBookingInvalidDate(t *testing.T) {
	repo := newFakeRepo()
	repo.providers[1] = &models.Provider{ID: 1}

	uc := newCreateBooking(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ProviderID: 1,
		ClientID:   7,
		Date:       "14.06.2025",
	})
	if !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("err = %v, want invalid_date", err)
	}
}
