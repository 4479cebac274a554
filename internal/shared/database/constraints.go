package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Backstop for the row-lock protocol: at most one ACTIVE booking per
	// (event_id, seat_id). The coordinator enforces this under the seat lock;
	// the partial index catches any drift at the storage layer.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS unique_active_booking_per_seat
		ON bookings (event_id, seat_id)
		WHERE status = 'ACTIVE';
	`).Error
	if err != nil {
		return err
	}

	// Index for booking lookups by user
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_bookings_user_id
		ON bookings (user_id);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
