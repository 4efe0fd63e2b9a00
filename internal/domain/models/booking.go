package models

import "time"

// BookingStatus values. The core only ever assigns StatusConfirmed;
// pending and cancelled are reserved for external workflow.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusPending   BookingStatus = "pending"
	StatusCancelled BookingStatus = "cancelled"
)

// Passenger carries per-seat traveller details. SeatNumber must match
// the seat at the same position in the booking's selection.
type Passenger struct {
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SeatNumber string `json:"seat_number"`
}

// Booking is the immutable record of a finalized purchase. It is
// created once at commit time and never mutated afterwards.
type Booking struct {
	ID            string        `json:"id"`
	TripID        string        `json:"trip_id"`
	SelectedSeats []Seat        `json:"selected_seats"`
	Passengers    []Passenger   `json:"passengers"`
	TotalAmount   int64         `json:"total_amount"`
	PayerIdentity string        `json:"payer_identity"`
	BookingDate   time.Time     `json:"booking_date"`
	Status        BookingStatus `json:"status"`
	PNR           string        `json:"pnr"`
}

// Clone returns a deep copy so callers cannot reach back into ledger
// state through the seat and passenger slices.
func (b Booking) Clone() Booking {
	out := b
	out.SelectedSeats = append([]Seat(nil), b.SelectedSeats...)
	out.Passengers = append([]Passenger(nil), b.Passengers...)
	return out
}
