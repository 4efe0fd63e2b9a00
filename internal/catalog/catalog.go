// Package catalog holds the trip listing a seat inventory is built
// from, with the search, sort, and filter rules of the booking front
// end it backs.
package catalog

import (
	"sort"
	"strings"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

// Criteria captures a route search plus presentation preferences.
type Criteria struct {
	From   string
	To     string
	Date   string
	SortBy string // departure (default), price, rating
	Filter string // all (default), luxury
}

type Catalog struct {
	trips []models.Trip
}

// New returns a catalog seeded with the stock operators.
func New() *Catalog {
	return &Catalog{trips: seedTrips()}
}

// NewWithTrips builds a catalog over caller-supplied trips.
func NewWithTrips(trips []models.Trip) *Catalog {
	out := make([]models.Trip, len(trips))
	copy(out, trips)
	return &Catalog{trips: out}
}

// Get returns the trip with the given ID.
func (c *Catalog) Get(id string) (models.Trip, error) {
	for _, t := range c.trips {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Trip{}, domain.NotFoundError{Resource: "trip"}
}

// Search returns trips for the route in the criteria, sorted and
// filtered. Departures are stamped with the searched route; an empty
// route falls back to the seeded default.
func (c *Catalog) Search(crit Criteria) []models.Trip {
	from := strings.TrimSpace(crit.From)
	to := strings.TrimSpace(crit.To)

	out := make([]models.Trip, 0, len(c.trips))
	for _, t := range c.trips {
		if from != "" {
			t.From = from
		}
		if to != "" {
			t.To = to
		}
		if !matchesFilter(t, crit.Filter) {
			continue
		}
		out = append(out, t)
	}

	switch strings.ToLower(strings.TrimSpace(crit.SortBy)) {
	case "price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].DepartureTime < out[j].DepartureTime })
	}
	return out
}

func matchesFilter(t models.Trip, filter string) bool {
	switch strings.ToLower(strings.TrimSpace(filter)) {
	case "", "all":
		return true
	case "luxury":
		return t.BusType == "Luxury" || t.BusType == "Premium"
	default:
		return true
	}
}

func seedTrips() []models.Trip {
	return []models.Trip{
		{
			ID:             "1",
			Operator:       "Express Travels",
			From:           "Mumbai",
			To:             "Pune",
			DepartureTime:  "08:00",
			ArrivalTime:    "12:30",
			Duration:       "4h 30m",
			Price:          450,
			AvailableSeats: 12,
			TotalSeats:     40,
			Amenities:      []string{"WiFi", "AC", "Charging Port", "Snacks"},
			BusType:        "Luxury",
			Rating:         4.5,
		},
		{
			ID:             "2",
			Operator:       "Comfort Lines",
			From:           "Mumbai",
			To:             "Pune",
			DepartureTime:  "10:15",
			ArrivalTime:    "15:00",
			Duration:       "4h 45m",
			Price:          380,
			AvailableSeats: 8,
			TotalSeats:     36,
			Amenities:      []string{"WiFi", "AC", "Charging Port"},
			BusType:        "Standard",
			Rating:         4.2,
		},
		{
			ID:             "3",
			Operator:       "Premium Coach",
			From:           "Mumbai",
			To:             "Pune",
			DepartureTime:  "14:30",
			ArrivalTime:    "18:45",
			Duration:       "4h 15m",
			Price:          520,
			AvailableSeats: 15,
			TotalSeats:     32,
			Amenities:      []string{"WiFi", "AC", "Charging Port", "Snacks", "Entertainment"},
			BusType:        "Premium",
			Rating:         4.7,
		},
		{
			ID:             "4",
			Operator:       "Swift Transit",
			From:           "Mumbai",
			To:             "Pune",
			DepartureTime:  "18:45",
			ArrivalTime:    "23:30",
			Duration:       "4h 45m",
			Price:          420,
			AvailableSeats: 6,
			TotalSeats:     40,
			Amenities:      []string{"WiFi", "AC", "Charging Port"},
			BusType:        "Standard",
			Rating:         4.3,
		},
	}
}
