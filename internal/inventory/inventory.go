// Package inventory materializes the seat layout for a trip and
// enforces the selection rules: seats toggle in and out of a working
// selection, capped at MaxSelectable, and only available seats may
// join. Selections use value semantics; every operation returns a new
// slice and leaves its inputs untouched.
package inventory

import (
	"fmt"

	"busbooking/internal/domain/models"
)

// MaxSelectable caps how many seats one session may hold at once.
const MaxSelectable = 4

const seatsPerRow = 4

// SeatNumberAt derives the presentational seat number for a 1-based
// position: row = ceil(pos/4), column cycling A-D within the row.
func SeatNumberAt(pos int) string {
	row := (pos + seatsPerRow - 1) / seatsPerRow
	col := rune('A' + (pos-1)%seatsPerRow)
	return fmt.Sprintf("%d%c", row, col)
}

func seatTypeAt(pos int) models.SeatType {
	switch pos % seatsPerRow {
	case 1, 0:
		return models.SeatWindow
	default:
		return models.SeatAisle
	}
}

// Build produces the full seat layout for a trip. The first
// TotalSeats-AvailableSeats positions are pre-booked; every seat
// carries the trip's flat fare. Output is deterministic for a given
// trip.
func Build(trip models.Trip) []models.Seat {
	if trip.TotalSeats <= 0 {
		return []models.Seat{}
	}
	booked := trip.TotalSeats - trip.AvailableSeats
	seats := make([]models.Seat, 0, trip.TotalSeats)
	for i := 1; i <= trip.TotalSeats; i++ {
		seats = append(seats, models.Seat{
			ID:          fmt.Sprintf("seat-%d", i),
			Number:      SeatNumberAt(i),
			IsAvailable: i > booked,
			Price:       trip.Price,
			Type:        seatTypeAt(i),
		})
	}
	return seats
}

// Select toggles seatID in the selection. Unknown or unavailable seats
// are a silent no-op, as is selecting past the cap: the caller observes
// no change and may re-render. The returned slice is always a fresh
// copy preserving insertion order.
func Select(seats []models.Seat, selection []models.Seat, seatID string) []models.Seat {
	seat, ok := findSeat(seats, seatID)
	if !ok || !seat.IsAvailable {
		return copySelection(selection)
	}

	for i, s := range selection {
		if s.ID == seatID {
			out := make([]models.Seat, 0, len(selection)-1)
			out = append(out, selection[:i]...)
			out = append(out, selection[i+1:]...)
			return out
		}
	}

	if len(selection) >= MaxSelectable {
		return copySelection(selection)
	}
	out := copySelection(selection)
	return append(out, seat)
}

// PriceOf sums the prices of every selected seat.
func PriceOf(selection []models.Seat) int64 {
	var total int64
	for _, s := range selection {
		total += s.Price
	}
	return total
}

func findSeat(seats []models.Seat, seatID string) (models.Seat, bool) {
	for _, s := range seats {
		if s.ID == seatID {
			return s, true
		}
	}
	return models.Seat{}, false
}

func copySelection(selection []models.Seat) []models.Seat {
	out := make([]models.Seat, len(selection))
	copy(out, selection)
	return out
}
