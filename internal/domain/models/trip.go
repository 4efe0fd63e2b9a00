package models

// Trip is one scheduled bus departure offered for booking. A seat
// layout is materialized from TotalSeats/AvailableSeats; Price is the
// flat per-seat fare.
type Trip struct {
	ID             string   `json:"id"`
	Operator       string   `json:"operator"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	DepartureTime  string   `json:"departure_time"`
	ArrivalTime    string   `json:"arrival_time"`
	Duration       string   `json:"duration"`
	Price          int64    `json:"price"`
	TotalSeats     int      `json:"total_seats"`
	AvailableSeats int      `json:"available_seats"`
	Amenities      []string `json:"amenities"`
	BusType        string   `json:"bus_type"`
	Rating         float64  `json:"rating"`
}
