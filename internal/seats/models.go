package seats

import (
	"github.com/google/uuid"
)

// Seat is the authoritative availability record for one (event, seat number)
// pair. IsBooked may only be flipped while holding the row lock taken by the
// Ledger's Acquire methods.
type Seat struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EventID    uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_event_seat_number" json:"event_id"`
	SeatNumber string    `gorm:"not null;size:10;uniqueIndex:idx_event_seat_number" json:"seat_number"`
	IsBooked   bool      `gorm:"not null;default:false" json:"is_booked"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

// IsAvailable reports whether the seat can still be booked
func (s *Seat) IsAvailable() bool {
	return !s.IsBooked
}

// SeatResponse for API responses
type SeatResponse struct {
	ID         string `json:"id"`
	SeatNumber string `json:"seat_number"`
	IsBooked   bool   `json:"is_booked"`
}

// ToResponse converts a Seat to its API representation
func (s *Seat) ToResponse() SeatResponse {
	return SeatResponse{
		ID:         s.ID.String(),
		SeatNumber: s.SeatNumber,
		IsBooked:   s.IsBooked,
	}
}
