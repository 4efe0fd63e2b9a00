// Package storage persists the booking ledger. Implementations must
// round-trip every Booking field, including the seat and passenger
// sub-structures, and treat unreadable prior state as an empty ledger
// rather than an error.
package storage

import "busbooking/internal/domain/models"

type Store interface {
	Save(bookings []models.Booking) error
	Load() ([]models.Booking, error)
}
