package bookings

import (
	"time"

	"github.com/google/uuid"
)

// Booking is one reservation of one seat at one event. At most one ACTIVE
// booking may exist per (event_id, seat_id) pair; a partial unique index in
// the database backstops the invariant the service enforces under the seat
// row lock. Cancelled bookings are deleted, not retained.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	EventID   uuid.UUID `gorm:"type:uuid;index;not null" json:"event_id"`
	SeatID    uuid.UUID `gorm:"type:uuid;index;not null" json:"seat_id"`
	Status    Status    `gorm:"type:varchar(20);check:status IN ('ACTIVE', 'CANCELLED');default:'ACTIVE'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}

// IsCancelled checks if the booking is cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// BookingRequest is the payload for booking a seat
type BookingRequest struct {
	UserID     string `json:"user_id" binding:"required,uuid"`
	EventID    string `json:"event_id" binding:"required,uuid"`
	SeatNumber string `json:"seat_number" binding:"required,max=10"`
}

// BookingResponse is the API representation of a booking
type BookingResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	EventID    string    `json:"event_id"`
	SeatID     string    `json:"seat_id"`
	SeatNumber string    `json:"seat_number,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts a Booking to its API representation
func (b *Booking) ToResponse() BookingResponse {
	return BookingResponse{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		EventID:   b.EventID.String(),
		SeatID:    b.SeatID.String(),
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
	}
}
