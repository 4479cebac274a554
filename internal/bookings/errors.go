package bookings

import "errors"

// Domain errors returned by the booking service. Callers distinguish business
// rule violations from infrastructure failures with errors.Is; anything not
// matching one of these sentinels is an infrastructure error wrapped with %w.
var (
	ErrEventNotFound     = errors.New("event not found")
	ErrSeatNotFound      = errors.New("seat not found")
	ErrSeatAlreadyBooked = errors.New("seat is already booked")
	ErrDuplicateBooking  = errors.New("an active booking already exists for this seat")
	ErrNoCapacity        = errors.New("event has no seat capacity")
	ErrBookingNotFound   = errors.New("booking not found")
)
