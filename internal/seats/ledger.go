package seats

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no seat matches the requested key.
var ErrNotFound = errors.New("seat not found")

// Ledger is the single source of mutual exclusion for seat state. Acquire
// methods take a PostgreSQL row lock (SELECT ... FOR UPDATE) that is held
// until the enclosing transaction commits or rolls back; concurrent acquirers
// of the same seat block, acquirers of different seats do not. No caller may
// read-then-write IsBooked outside of an acquired row.
type Ledger interface {
	// AcquireByNumber locks and returns the seat for (eventID, seatNumber).
	AcquireByNumber(ctx context.Context, eventID uuid.UUID, seatNumber string) (*Seat, error)
	// AcquireByID locks and returns the seat by primary key.
	AcquireByID(ctx context.Context, seatID uuid.UUID) (*Seat, error)
	// Save persists a seat mutated under an acquired lock.
	Save(ctx context.Context, seat *Seat) error
	// CreateBatch inserts seats in bulk during event creation.
	CreateBatch(ctx context.Context, seats []Seat) error
	// ListByEvent returns one page of seats for an event, ordered by number.
	ListByEvent(ctx context.Context, eventID uuid.UUID, page, limit int) ([]Seat, int64, error)
}

type ledger struct {
	db *gorm.DB
}

// NewLedger creates a ledger bound to the given GORM handle. Bind it to a
// transaction handle to scope the row locks to that unit of work.
func NewLedger(db *gorm.DB) Ledger {
	return &ledger{db: db}
}

func (l *ledger) AcquireByNumber(ctx context.Context, eventID uuid.UUID, seatNumber string) (*Seat, error) {
	var seat Seat
	err := l.db.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("event_id = ? AND seat_number = ?", eventID, seatNumber).
		First(&seat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock seat: %w", err)
	}
	return &seat, nil
}

func (l *ledger) AcquireByID(ctx context.Context, seatID uuid.UUID) (*Seat, error) {
	var seat Seat
	err := l.db.WithContext(ctx).
		Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", seatID).
		First(&seat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock seat: %w", err)
	}
	return &seat, nil
}

func (l *ledger) Save(ctx context.Context, seat *Seat) error {
	return l.db.WithContext(ctx).
		Model(&Seat{}).
		Where("id = ?", seat.ID).
		Update("is_booked", seat.IsBooked).Error
}

func (l *ledger) CreateBatch(ctx context.Context, seats []Seat) error {
	if len(seats) == 0 {
		return nil
	}
	return l.db.WithContext(ctx).Create(&seats).Error
}

func (l *ledger) ListByEvent(ctx context.Context, eventID uuid.UUID, page, limit int) ([]Seat, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}

	var totalCount int64
	baseQuery := l.db.WithContext(ctx).Model(&Seat{}).Where("event_id = ?", eventID)
	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	var result []Seat
	offset := (page - 1) * limit
	err := baseQuery.
		Order("seat_number ASC").
		Offset(offset).
		Limit(limit).
		Find(&result).Error

	return result, totalCount, err
}
