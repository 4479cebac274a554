package events

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bookly/internal/seats"

	"github.com/google/uuid"
)

// Service interface defines the contract for event business logic
type Service interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error)
	GetEventWithSeats(ctx context.Context, id uuid.UUID, query SeatListQuery) (*EventWithSeats, error)
	GetAllEvents(ctx context.Context) ([]EventResponse, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*EventResponse, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

// NewService creates a new event service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateEvent creates an event and its contiguous seat range in one transaction
func (s *service) CreateEvent(ctx context.Context, req CreateEventRequest) (*EventResponse, error) {
	if !req.Date.After(time.Now()) {
		return nil, fmt.Errorf("event date must be in the future")
	}
	if req.SeatEnd < req.SeatStart {
		return nil, fmt.Errorf("seat_end must be greater than or equal to seat_start")
	}

	event := &Event{
		Name:       req.Name,
		Location:   req.Location,
		Date:       req.Date,
		TotalSeats: req.TotalSeats,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.Create(ctx, event); err != nil {
			return fmt.Errorf("failed to create event: %w", err)
		}

		seatRows := make([]seats.Seat, 0, req.SeatEnd-req.SeatStart+1)
		for n := req.SeatStart; n <= req.SeatEnd; n++ {
			seatRows = append(seatRows, seats.Seat{
				EventID:    event.ID,
				SeatNumber: strconv.Itoa(n),
			})
		}
		if err := tx.Seats().CreateBatch(ctx, seatRows); err != nil {
			return fmt.Errorf("failed to create seats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := event.ToResponse()
	return &resp, nil
}

// GetEventWithSeats returns event metadata plus one page of its seats
func (s *service) GetEventWithSeats(ctx context.Context, id uuid.UUID, query SeatListQuery) (*EventWithSeats, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 50
	}

	seatPage, totalCount, err := s.repo.Seats().ListByEvent(ctx, id, query.Page, query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seats: %w", err)
	}

	seatResponses := make([]seats.SeatResponse, 0, len(seatPage))
	for i := range seatPage {
		seatResponses = append(seatResponses, seatPage[i].ToResponse())
	}

	return &EventWithSeats{
		Event:      event.ToResponse(),
		Seats:      seatResponses,
		TotalSeats: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
	}, nil
}

// GetAllEvents lists every event
func (s *service) GetAllEvents(ctx context.Context) ([]EventResponse, error) {
	all, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	responses := make([]EventResponse, 0, len(all))
	for i := range all {
		responses = append(responses, all[i].ToResponse())
	}
	return responses, nil
}

// UpdateEvent applies the non-nil fields of the request
func (s *service) UpdateEvent(ctx context.Context, id uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Date != nil {
		if !req.Date.After(time.Now()) {
			return nil, fmt.Errorf("event date must be in the future")
		}
		event.Date = *req.Date
	}
	if req.TotalSeats != nil {
		event.TotalSeats = *req.TotalSeats
	}

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	resp := event.ToResponse()
	return &resp, nil
}

// DeleteEvent removes an event; its seats are removed by the cascade
func (s *service) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
