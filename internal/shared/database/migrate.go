package database

import (
	"bookly/internal/bookings"
	"bookly/internal/events"
	"bookly/internal/seats"
	"bookly/internal/users"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&events.Event{},
		&seats.Seat{},
		&bookings.Booking{},
	)
}
