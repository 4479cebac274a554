package notifications

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Transition identifies the booking state change being announced
type Transition string

const (
	TransitionBooked    Transition = "BOOKED"
	TransitionCancelled Transition = "CANCELLED"
)

// StateChange carries everything the fan-out needs about one committed
// booking state transition
type StateChange struct {
	Transition Transition
	BookingID  uuid.UUID
	UserID     uuid.UUID
	EventID    uuid.UUID
	SeatNumber string
}

// BookingEvent is the durable stream record, one per committed transition
type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	UserID     string `json:"user_id"`
	EventID    string `json:"event_id"`
	SeatNumber string `json:"seat_number"`
}

// ToJSON serializes the booking event for the stream payload
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// SeatStatusUpdate is the live broadcast payload sent to viewers of an event
type SeatStatusUpdate struct {
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

// NewBookingEvent builds the stream record for a state change
func NewBookingEvent(change StateChange) BookingEvent {
	return BookingEvent{
		Type:       string(change.Transition),
		BookingID:  change.BookingID.String(),
		UserID:     change.UserID.String(),
		EventID:    change.EventID.String(),
		SeatNumber: change.SeatNumber,
	}
}

// NewSeatStatusUpdate builds the broadcast payload for a state change
func NewSeatStatusUpdate(change StateChange) SeatStatusUpdate {
	return SeatStatusUpdate{
		SeatNumber: change.SeatNumber,
		IsBooked:   change.Transition == TransitionBooked,
	}
}
