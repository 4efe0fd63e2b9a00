// Package ledger keeps the append-only collection of committed
// bookings. Commit is the only mutation; history is never edited, and
// callers always receive copies.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/inventory"
)

type Ledger struct {
	mu       sync.RWMutex
	bookings []models.Booking
	now      func() time.Time
}

func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Restore replaces the ledger contents with previously persisted
// bookings. Meant for startup hydration from a storage collaborator.
func (l *Ledger) Restore(bookings []models.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.bookings = make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		l.bookings = append(l.bookings, b.Clone())
	}
}

// Commit finalizes a selection into an immutable Booking and appends
// it. Validation failures surface as domain.ValidationError; nothing
// is appended on error.
func (l *Ledger) Commit(trip models.Trip, selection []models.Seat, passengers []models.Passenger, payer string) (models.Booking, error) {
	if len(selection) == 0 {
		return models.Booking{}, domain.ValidationError{Field: "selection", Msg: "no seats selected"}
	}
	if len(passengers) != len(selection) {
		return models.Booking{}, domain.ValidationError{Field: "passengers", Msg: "one passenger required per seat"}
	}
	for i, p := range passengers {
		if strings.TrimSpace(p.Name) == "" {
			return models.Booking{}, domain.ValidationError{Field: "passengers", Msg: "passenger name is required"}
		}
		if p.SeatNumber != selection[i].Number {
			return models.Booking{}, domain.ValidationError{Field: "passengers", Msg: "passenger order does not match selected seats"}
		}
	}
	if strings.TrimSpace(payer) == "" {
		payer = "Guest"
	}

	booking := models.Booking{
		ID:            uuid.NewString(),
		TripID:        trip.ID,
		SelectedSeats: append([]models.Seat(nil), selection...),
		Passengers:    append([]models.Passenger(nil), passengers...),
		TotalAmount:   inventory.PriceOf(selection),
		PayerIdentity: payer,
		BookingDate:   l.now().UTC(),
		Status:        models.StatusConfirmed,
		PNR:           NewPNR(),
	}

	l.mu.Lock()
	l.bookings = append(l.bookings, booking)
	l.mu.Unlock()

	return booking.Clone(), nil
}

// All returns every booking in insertion order, most recent last.
func (l *Ledger) All() []models.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.Booking, 0, len(l.bookings))
	for _, b := range l.bookings {
		out = append(out, b.Clone())
	}
	return out
}

// Get looks a booking up by ID.
func (l *Ledger) Get(id string) (models.Booking, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, b := range l.bookings {
		if b.ID == id {
			return b.Clone(), nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}

// TotalSpent sums TotalAmount over every booking regardless of status,
// matching the dashboard it replaces.
func (l *Ledger) TotalSpent() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var total int64
	for _, b := range l.bookings {
		total += b.TotalAmount
	}
	return total
}

// ActiveCount counts confirmed bookings.
func (l *Ledger) ActiveCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	count := 0
	for _, b := range l.bookings {
		if b.Status == models.StatusConfirmed {
			count++
		}
	}
	return count
}

// Len reports how many bookings the ledger holds.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}
