package bookings

import (
	"context"
	"errors"
	"fmt"

	"bookly/internal/notifications"
	"bookly/internal/seats"
	"bookly/pkg/logger"

	"github.com/google/uuid"
)

// Service is the reservation coordinator. Book and cancel each run as one
// transactional unit of work around the seat row lock; the lock spans the
// whole check-then-act sequence, so for any (event, seat) pair at most one
// concurrent booking can succeed. Notifications fire only after the unit of
// work has committed.
type Service interface {
	BookSeat(ctx context.Context, userID, eventID uuid.UUID, seatNumber string) (*Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) error
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
}

type service struct {
	repo   Repository
	fanout notifications.Fanout
	log    *logger.Logger
}

// NewService creates a new booking service instance
func NewService(repo Repository, fanout notifications.Fanout, log *logger.Logger) Service {
	if log == nil {
		log = logger.GetDefault()
	}
	return &service{
		repo:   repo,
		fanout: fanout,
		log:    log,
	}
}

// BookSeat reserves one seat for one user. The seat row lock taken inside
// the transaction is the sole mutual-exclusion point: availability is checked
// only after the lock is held, and every mutation after the lock belongs to
// the same transaction, so a failure at any step leaves no trace.
func (s *service) BookSeat(ctx context.Context, userID, eventID uuid.UUID, seatNumber string) (*Booking, error) {
	event, err := s.repo.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.TotalSeats <= 0 {
		return nil, ErrNoCapacity
	}

	var booking *Booking
	err = s.repo.Transaction(ctx, func(tx Repository) error {
		seat, err := tx.Seats().AcquireByNumber(ctx, eventID, seatNumber)
		if err != nil {
			if errors.Is(err, seats.ErrNotFound) {
				return ErrSeatNotFound
			}
			return err
		}

		// The race guard: evaluated only while holding the row lock
		if seat.IsBooked {
			return ErrSeatAlreadyBooked
		}

		// Guards against ledger/record drift
		existing, err := tx.FindActiveBooking(ctx, eventID, seat.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrDuplicateBooking
		}

		seat.IsBooked = true
		if err := tx.Seats().Save(ctx, seat); err != nil {
			return fmt.Errorf("failed to update seat: %w", err)
		}

		booking = &Booking{
			UserID:  userID,
			EventID: eventID,
			SeatID:  seat.ID,
			Status:  StatusActive,
		}
		if err := tx.CreateBooking(ctx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.LogSeatBooked(ctx, booking.ID.String(), eventID.String(), userID.String(), seatNumber)

	s.fanout.Publish(ctx, notifications.StateChange{
		Transition: notifications.TransitionBooked,
		BookingID:  booking.ID,
		UserID:     userID,
		EventID:    eventID,
		SeatNumber: seatNumber,
	})

	return booking, nil
}

// CancelBooking releases the booked seat and removes the booking record.
// The record is marked CANCELLED inside the transaction before deletion, so
// the active-status lookup that guards re-cancellation can never observe a
// half-cancelled booking. A second cancel of the same id fails with
// ErrBookingNotFound.
func (s *service) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	var change notifications.StateChange
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		booking, err := tx.FindBookingByIDAndStatus(ctx, bookingID, StatusActive)
		if err != nil {
			return err
		}

		booking.Status = StatusCancelled
		if err := tx.SaveBooking(ctx, booking); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		seat, err := tx.Seats().AcquireByID(ctx, booking.SeatID)
		if err != nil {
			if errors.Is(err, seats.ErrNotFound) {
				return ErrSeatNotFound
			}
			return err
		}
		seat.IsBooked = false
		if err := tx.Seats().Save(ctx, seat); err != nil {
			return fmt.Errorf("failed to free seat: %w", err)
		}

		if err := tx.DeleteBooking(ctx, booking.ID); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}

		change = notifications.StateChange{
			Transition: notifications.TransitionCancelled,
			BookingID:  booking.ID,
			UserID:     booking.UserID,
			EventID:    booking.EventID,
			SeatNumber: seat.SeatNumber,
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.LogBookingCancelled(ctx, change.BookingID.String(), change.EventID.String(), change.SeatNumber)

	s.fanout.Publish(ctx, change)
	return nil
}

// GetUserBookings retrieves all bookings for a specific user
func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return s.repo.GetUserBookings(ctx, userID)
}
