package events

import (
	"context"
	"sort"
	"testing"
	"time"

	"bookly/internal/seats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	events map[uuid.UUID]Event
	seats  map[uuid.UUID][]seats.Seat

	failSeatBatch bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		events: make(map[uuid.UUID]Event),
		seats:  make(map[uuid.UUID][]seats.Seat),
	}
}

func (r *memoryRepo) Transaction(ctx context.Context, fn func(tx Repository) error) error {
	snapshotEvents := make(map[uuid.UUID]Event, len(r.events))
	for k, v := range r.events {
		snapshotEvents[k] = v
	}
	snapshotSeats := make(map[uuid.UUID][]seats.Seat, len(r.seats))
	for k, v := range r.seats {
		snapshotSeats[k] = append([]seats.Seat(nil), v...)
	}

	if err := fn(r); err != nil {
		r.events = snapshotEvents
		r.seats = snapshotSeats
		return err
	}
	return nil
}

func (r *memoryRepo) Create(ctx context.Context, event *Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = time.Now()
	r.events[event.ID] = *event
	return nil
}

func (r *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	event, ok := r.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &event, nil
}

func (r *memoryRepo) GetAll(ctx context.Context) ([]Event, error) {
	result := make([]Event, 0, len(r.events))
	for _, e := range r.events {
		result = append(result, e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.Before(result[j].Date) })
	return result, nil
}

func (r *memoryRepo) Save(ctx context.Context, event *Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return ErrNotFound
	}
	r.events[event.ID] = *event
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.events[id]; !ok {
		return ErrNotFound
	}
	delete(r.events, id)
	delete(r.seats, id)
	return nil
}

func (r *memoryRepo) Seats() seats.Ledger {
	return &memoryLedger{repo: r}
}

type memoryLedger struct {
	repo *memoryRepo
}

func (l *memoryLedger) AcquireByNumber(ctx context.Context, eventID uuid.UUID, seatNumber string) (*seats.Seat, error) {
	for _, s := range l.repo.seats[eventID] {
		if s.SeatNumber == seatNumber {
			seat := s
			return &seat, nil
		}
	}
	return nil, seats.ErrNotFound
}

func (l *memoryLedger) AcquireByID(ctx context.Context, seatID uuid.UUID) (*seats.Seat, error) {
	for _, rows := range l.repo.seats {
		for _, s := range rows {
			if s.ID == seatID {
				seat := s
				return &seat, nil
			}
		}
	}
	return nil, seats.ErrNotFound
}

func (l *memoryLedger) Save(ctx context.Context, seat *seats.Seat) error {
	rows := l.repo.seats[seat.EventID]
	for i := range rows {
		if rows[i].ID == seat.ID {
			rows[i].IsBooked = seat.IsBooked
			return nil
		}
	}
	return seats.ErrNotFound
}

func (l *memoryLedger) CreateBatch(ctx context.Context, batch []seats.Seat) error {
	if l.repo.failSeatBatch {
		return assert.AnError
	}
	for i := range batch {
		if batch[i].ID == uuid.Nil {
			batch[i].ID = uuid.New()
		}
		l.repo.seats[batch[i].EventID] = append(l.repo.seats[batch[i].EventID], batch[i])
	}
	return nil
}

func (l *memoryLedger) ListByEvent(ctx context.Context, eventID uuid.UUID, page, limit int) ([]seats.Seat, int64, error) {
	rows := l.repo.seats[eventID]
	total := int64(len(rows))
	start := (page - 1) * limit
	if start >= len(rows) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return append([]seats.Seat(nil), rows[start:end]...), total, nil
}

func validCreateRequest() CreateEventRequest {
	return CreateEventRequest{
		Name:       "Spring Concert",
		Location:   "Main Hall",
		Date:       time.Now().Add(48 * time.Hour),
		TotalSeats: 20,
		SeatStart:  1,
		SeatEnd:    20,
	}
}

func TestCreateEvent_BuildsSeatRange(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	resp, err := svc.CreateEvent(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	eventID, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	rows := repo.seats[eventID]
	require.Len(t, rows, 20)
	assert.Equal(t, "1", rows[0].SeatNumber)
	assert.Equal(t, "20", rows[19].SeatNumber)
	for _, s := range rows {
		assert.False(t, s.IsBooked)
	}
}

func TestCreateEvent_RejectsPastDate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	req := validCreateRequest()
	req.Date = time.Now().Add(-time.Hour)

	_, err := svc.CreateEvent(context.Background(), req)
	assert.Error(t, err)
	assert.Empty(t, repo.events)
}

func TestCreateEvent_RejectsInvertedSeatRange(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	req := validCreateRequest()
	req.SeatStart = 10
	req.SeatEnd = 5

	_, err := svc.CreateEvent(context.Background(), req)
	assert.Error(t, err)
}

func TestCreateEvent_SeatFailureRollsBackEvent(t *testing.T) {
	repo := newMemoryRepo()
	repo.failSeatBatch = true
	svc := NewService(repo)

	_, err := svc.CreateEvent(context.Background(), validCreateRequest())
	require.Error(t, err)
	assert.Empty(t, repo.events)
}

func TestGetEventWithSeats_Pagination(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	resp, err := svc.CreateEvent(context.Background(), validCreateRequest())
	require.NoError(t, err)
	eventID, _ := uuid.Parse(resp.ID)

	page, err := svc.GetEventWithSeats(context.Background(), eventID, SeatListQuery{Page: 2, Limit: 15})
	require.NoError(t, err)
	assert.Equal(t, int64(20), page.TotalSeats)
	assert.Len(t, page.Seats, 5)
	assert.Equal(t, 2, page.Page)
}

func TestGetEventWithSeats_NotFound(t *testing.T) {
	svc := NewService(newMemoryRepo())

	_, err := svc.GetEventWithSeats(context.Background(), uuid.New(), SeatListQuery{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateEvent_AppliesPartialFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	resp, err := svc.CreateEvent(context.Background(), validCreateRequest())
	require.NoError(t, err)
	eventID, _ := uuid.Parse(resp.ID)

	newName := "Autumn Concert"
	updated, err := svc.UpdateEvent(context.Background(), eventID, UpdateEventRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Autumn Concert", updated.Name)
	assert.Equal(t, resp.Location, updated.Location)
}

func TestUpdateEvent_RejectsPastDate(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	resp, err := svc.CreateEvent(context.Background(), validCreateRequest())
	require.NoError(t, err)
	eventID, _ := uuid.Parse(resp.ID)

	past := time.Now().Add(-time.Hour)
	_, err = svc.UpdateEvent(context.Background(), eventID, UpdateEventRequest{Date: &past})
	assert.Error(t, err)
}

func TestDeleteEvent_RemovesSeats(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)

	resp, err := svc.CreateEvent(context.Background(), validCreateRequest())
	require.NoError(t, err)
	eventID, _ := uuid.Parse(resp.ID)

	require.NoError(t, svc.DeleteEvent(context.Background(), eventID))
	assert.Empty(t, repo.seats[eventID])

	err = svc.DeleteEvent(context.Background(), eventID)
	assert.ErrorIs(t, err, ErrNotFound)
}
