package events

import (
	"time"

	"bookly/internal/seats"

	"github.com/google/uuid"
)

type Event struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name       string    `json:"name" gorm:"not null;size:255"`
	Location   string    `json:"location" gorm:"not null;size:255"`
	Date       time.Time `json:"date" gorm:"not null"`
	TotalSeats int       `json:"total_seats" gorm:"not null;check:total_seats > 0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Seats are created in bulk with the event and removed with it
	Seats []seats.Seat `json:"-" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE;"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

type EventResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Date       time.Time `json:"date"`
	TotalSeats int       `json:"total_seats"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToResponse converts an Event to EventResponse
func (e *Event) ToResponse() EventResponse {
	return EventResponse{
		ID:         e.ID.String(),
		Name:       e.Name,
		Location:   e.Location,
		Date:       e.Date,
		TotalSeats: e.TotalSeats,
		CreatedAt:  e.CreatedAt,
	}
}

type CreateEventRequest struct {
	Name       string    `json:"name" binding:"required,min=3,max=255"`
	Location   string    `json:"location" binding:"required,min=2,max=255"`
	Date       time.Time `json:"date" binding:"required,futuredate"`
	TotalSeats int       `json:"total_seats" binding:"required,min=1,max=100000"`
	SeatStart  int       `json:"seat_start" binding:"required,min=1"`
	SeatEnd    int       `json:"seat_end" binding:"required,gtefield=SeatStart"`
}

type UpdateEventRequest struct {
	Name       *string    `json:"name" binding:"omitempty,min=3,max=255"`
	Location   *string    `json:"location" binding:"omitempty,min=2,max=255"`
	Date       *time.Time `json:"date" binding:"omitempty,futuredate"`
	TotalSeats *int       `json:"total_seats" binding:"omitempty,min=1,max=100000"`
}

type SeatListQuery struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=500"`
}

// EventWithSeats is the detail view: event metadata plus one page of seats
type EventWithSeats struct {
	Event      EventResponse        `json:"event"`
	Seats      []seats.SeatResponse `json:"seats"`
	TotalSeats int64                `json:"total_seat_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
}
