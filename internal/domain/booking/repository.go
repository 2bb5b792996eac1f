package booking

import (
	"context"
	"time"

	"github.com/Dmast1/bookingart-api/internal/models"
)

type Repository interface {
	// -------- Provider --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	GetProviderUser(
		ctx context.Context,
		providerID uint,
	) (*models.User, error)

	// -------- Client --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Availability gate --------
	GetRuleForDay(
		ctx context.Context,
		providerID uint,
		day time.Time,
	) (*models.AvailabilityRule, error)

	// -------- Booking (create / state change) --------
	CreateBooking(
		ctx context.Context,
		br *models.BookingRequest,
	) error

	GetBookingForProvider(
		ctx context.Context,
		bookingID uint,
		providerID uint,
	) (*models.BookingRequest, error)

	GetBookingForClient(
		ctx context.Context,
		bookingID uint,
		clientID uint,
	) (*models.BookingRequest, error)

	UpdateBooking(
		ctx context.Context,
		br *models.BookingRequest,
	) error

	// -------- Listing --------
	ListBookingsForProvider(
		ctx context.Context,
		providerID uint,
		status string,
	) ([]models.BookingRequest, error)

	ListBookingsForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.BookingRequest, error)
}
