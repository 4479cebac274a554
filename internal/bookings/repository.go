package bookings

import (
	"context"
	"errors"
	"fmt"

	"bookly/internal/events"
	"bookly/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository is the storage surface of the booking service. Transaction
// yields a repository bound to one database transaction; the seat ledger
// returned by Seats shares the same handle, so seat row locks and booking
// writes commit or roll back together.
type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// Event lookup used by the capacity gate
	GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error)

	// Seats returns a seat ledger bound to the same handle
	Seats() seats.Ledger

	// Booking record operations
	CreateBooking(ctx context.Context, booking *Booking) error
	SaveBooking(ctx context.Context, booking *Booking) error
	DeleteBooking(ctx context.Context, bookingID uuid.UUID) error
	FindBookingByIDAndStatus(ctx context.Context, bookingID uuid.UUID, status Status) (*Booking, error)
	FindActiveBooking(ctx context.Context, eventID, seatID uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) GetEvent(ctx context.Context, eventID uuid.UUID) (*events.Event, error) {
	var event events.Event
	err := r.db.WithContext(ctx).Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &event, nil
}

func (r *repository) Seats() seats.Ledger {
	return seats.NewLedger(r.db)
}

func (r *repository) CreateBooking(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) SaveBooking(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *repository) DeleteBooking(ctx context.Context, bookingID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Booking{}, "id = ?", bookingID).Error
}

func (r *repository) FindBookingByIDAndStatus(ctx context.Context, bookingID uuid.UUID, status Status) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", bookingID, status).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return &booking, nil
}

// FindActiveBooking returns (nil, nil) when no active booking exists for the
// pair; absence is the normal case on the booking path, not an error.
func (r *repository) FindActiveBooking(ctx context.Context, eventID, seatID uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND seat_id = ? AND status = ?", eventID, seatID, StatusActive).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch active booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var result []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&result).Error
	return result, err
}
