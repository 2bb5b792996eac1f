package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/Dmast1/bookingart-api/internal/domain/booking"
	"github.com/Dmast1/bookingart-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Provider / users
// --------------------------------------------------

func (r *BookingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BookingGormRepository) GetProviderUser(
	ctx context.Context,
	providerID uint,
) (*models.User, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, providerID).Error; err != nil {
		return nil, err
	}

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, p.UserID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// --------------------------------------------------
// Availability gate
// --------------------------------------------------

func (r *BookingGormRepository) GetRuleForDay(
	ctx context.Context,
	providerID uint,
	day time.Time,
) (*models.AvailabilityRule, error) {

	var rule models.AvailabilityRule
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND day = ?", providerID, day).
		First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	br *models.BookingRequest,
) error {
	return r.db.WithContext(ctx).Create(br).Error
}

func (r *BookingGormRepository) GetBookingForProvider(
	ctx context.Context,
	bookingID uint,
	providerID uint,
) (*models.BookingRequest, error) {

	var br models.BookingRequest
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND provider_id = ?", bookingID, providerID).
		First(&br).Error; err != nil {
		return nil, err
	}
	return &br, nil
}

func (r *BookingGormRepository) GetBookingForClient(
	ctx context.Context,
	bookingID uint,
	clientID uint,
) (*models.BookingRequest, error) {

	var br models.BookingRequest
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("id = ? AND client_id = ?", bookingID, clientID).
		First(&br).Error; err != nil {
		return nil, err
	}
	return &br, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	br *models.BookingRequest,
) error {
	return r.db.WithContext(ctx).Save(br).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForProvider(
	ctx context.Context,
	providerID uint,
	status string,
) ([]models.BookingRequest, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Where("provider_id = ?", providerID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var brs []models.BookingRequest
	if err := q.Order("created_at DESC").Find(&brs).Error; err != nil {
		return nil, err
	}
	return brs, nil
}

func (r *BookingGormRepository) ListBookingsForClient(
	ctx context.Context,
	clientID uint,
) ([]models.BookingRequest, error) {

	var brs []models.BookingRequest
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&brs).Error; err != nil {
		return nil, err
	}
	return brs, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
