package models

// SeatType distinguishes window and aisle positions within a row.
type SeatType string

const (
	SeatWindow SeatType = "window"
	SeatAisle  SeatType = "aisle"
)

// Seat is one bookable unit within a trip's layout. Selection is not
// stored on the seat; it lives in the caller's working set so the
// layout and the selection cannot drift apart.
type Seat struct {
	ID          string   `json:"id"`
	Number      string   `json:"number"`
	IsAvailable bool     `json:"is_available"`
	Price       int64    `json:"price"`
	Type        SeatType `json:"type"`
}
