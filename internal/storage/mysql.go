package storage

import (
	"database/sql"
	"encoding/json"
	"log"
	"sync"
	"time"

	"busbooking/internal/domain/models"
)

// MySQLStore persists the ledger in a bookings table. Seats and
// passengers are stored as JSON columns so the full sub-structures
// survive the round trip.
type MySQLStore struct {
	DB *sql.DB

	mu    sync.Mutex
	ready bool
}

func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{DB: db}
}

const bookingsDDL = `
CREATE TABLE IF NOT EXISTS bookings (
	seq BIGINT AUTO_INCREMENT PRIMARY KEY,
	id VARCHAR(64) NOT NULL,
	trip_id VARCHAR(64) NOT NULL,
	selected_seats JSON NOT NULL,
	passengers JSON NOT NULL,
	total_amount BIGINT NOT NULL,
	payer_identity VARCHAR(255) NOT NULL,
	booking_date DATETIME(6) NOT NULL,
	status VARCHAR(20) NOT NULL,
	pnr VARCHAR(16) NOT NULL,
	UNIQUE KEY uniq_booking_id (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`

// ensure creates the bookings table on first use. Concurrent callers
// serialize on mu; a failed attempt leaves ready unset so the next
// call retries.
func (s *MySQLStore) ensure() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready {
		return nil
	}
	if _, err := s.DB.Exec(bookingsDDL); err != nil {
		return err
	}
	s.ready = true
	return nil
}

func (s *MySQLStore) Save(bookings []models.Booking) error {
	if err := s.ensure(); err != nil {
		return err
	}
	const stmt = `INSERT INTO bookings
		(id, trip_id, selected_seats, passengers, total_amount, payer_identity, booking_date, status, pnr)
		VALUES (?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE status=VALUES(status)`
	for _, b := range bookings {
		seats, err := json.Marshal(b.SelectedSeats)
		if err != nil {
			return err
		}
		passengers, err := json.Marshal(b.Passengers)
		if err != nil {
			return err
		}
		if _, err := s.DB.Exec(stmt,
			b.ID, b.TripID, seats, passengers,
			b.TotalAmount, b.PayerIdentity, b.BookingDate.UTC(), string(b.Status), b.PNR,
		); err != nil {
			return err
		}
	}
	return nil
}

// Load returns the ledger in insertion order. Rows whose JSON columns
// no longer parse are logged and skipped; a half-readable table still
// yields the bookings that survive.
func (s *MySQLStore) Load() ([]models.Booking, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	rows, err := s.DB.Query(`SELECT id, trip_id, selected_seats, passengers, total_amount, payer_identity, booking_date, status, pnr
		FROM bookings ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		var seats, passengers []byte
		var status string
		var bookingDate time.Time
		if err := rows.Scan(&b.ID, &b.TripID, &seats, &passengers,
			&b.TotalAmount, &b.PayerIdentity, &bookingDate, &status, &b.PNR); err != nil {
			return out, err
		}
		if err := json.Unmarshal(seats, &b.SelectedSeats); err != nil {
			log.Printf("[STORAGE] action=load msg=skipping booking %s, bad seats payload: %v", b.ID, err)
			continue
		}
		if err := json.Unmarshal(passengers, &b.Passengers); err != nil {
			log.Printf("[STORAGE] action=load msg=skipping booking %s, bad passengers payload: %v", b.ID, err)
			continue
		}
		b.BookingDate = bookingDate.UTC()
		b.Status = models.BookingStatus(status)
		out = append(out, b)
	}
	return out, rows.Err()
}
