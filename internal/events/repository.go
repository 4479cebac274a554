package events

import (
	"context"
	"errors"
	"fmt"

	"bookly/internal/seats"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no event matches the requested ID.
var ErrNotFound = errors.New("event not found")

type Repository interface {
	// Transaction runs fn against a repository bound to one transaction;
	// fn returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	GetAll(ctx context.Context) ([]Event, error)
	Save(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Seats returns a seat ledger bound to the same handle (and therefore to
	// the same transaction when called on a tx-bound repository).
	Seats() seats.Ledger
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

func (r *repository) Create(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	var event Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &event, nil
}

func (r *repository) GetAll(ctx context.Context) ([]Event, error) {
	var result []Event
	err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&result).Error
	return result, err
}

func (r *repository) Save(ctx context.Context, event *Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	// Seats go with the event via the FK cascade
	result := r.db.WithContext(ctx).Delete(&Event{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Seats() seats.Ledger {
	return seats.NewLedger(r.db)
}
