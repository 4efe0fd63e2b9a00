package services

import (
	"strings"
	"sync"

	"busbooking/internal/catalog"
	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
	"busbooking/internal/inventory"
	"busbooking/internal/ledger"
	"busbooking/internal/storage"
	"busbooking/internal/utils"
)

// BookingService wires the catalog, seat inventory, and ledger
// together. Commits are serialized per trip and re-validate seat
// availability inside the critical section, so two sessions cannot
// double-book a seat.
type BookingService struct {
	Catalog   *catalog.Catalog
	Ledger    *ledger.Ledger
	Store     storage.Store
	RequestID string

	mu          sync.Mutex
	saveMu      sync.Mutex
	tripLocks   map[string]*sync.Mutex
	idempotency map[string]string // idempotency key -> booking ID
}

func NewBookingService(cat *catalog.Catalog, led *ledger.Ledger, store storage.Store) *BookingService {
	return &BookingService{
		Catalog:     cat,
		Ledger:      led,
		Store:       store,
		tripLocks:   map[string]*sync.Mutex{},
		idempotency: map[string]string{},
	}
}

// SeatsFor returns the trip's layout with committed bookings applied
// on top of the pre-booked positions.
func (s *BookingService) SeatsFor(tripID string) ([]models.Seat, error) {
	trip, err := s.Catalog.Get(tripID)
	if err != nil {
		return nil, err
	}
	seats := inventory.Build(trip)
	taken := s.committedSeats(tripID)
	for i := range seats {
		if taken[seats[i].ID] {
			seats[i].IsAvailable = false
		}
	}
	return seats, nil
}

// Quote prices a seat selection without committing it. Seats that
// cannot be selected are simply absent from the quote, mirroring the
// no-op semantics of selection itself.
func (s *BookingService) Quote(tripID string, seatIDs []string) ([]models.Seat, int64, error) {
	seats, err := s.SeatsFor(tripID)
	if err != nil {
		return nil, 0, err
	}
	var selection []models.Seat
	for _, id := range seatIDs {
		selection = inventory.Select(seats, selection, id)
	}
	return selection, inventory.PriceOf(selection), nil
}

// Commit finalizes a booking for the given seats. idemKey is optional;
// when a commit with the same key is retried, the original booking is
// returned instead of a duplicate. The ledger is persisted through the
// store after each successful commit.
func (s *BookingService) Commit(tripID string, seatIDs []string, passengers []models.Passenger, payer, idemKey string) (models.Booking, error) {
	trip, err := s.Catalog.Get(tripID)
	if err != nil {
		return models.Booking{}, err
	}

	seen := map[string]bool{}
	for _, id := range seatIDs {
		if seen[id] {
			return models.Booking{}, domain.ValidationError{Field: "seats", Msg: "seat " + id + " listed more than once"}
		}
		seen[id] = true
	}

	lock := s.lockFor(tripID)
	lock.Lock()
	defer lock.Unlock()

	if idemKey = strings.TrimSpace(idemKey); idemKey != "" {
		s.mu.Lock()
		existingID, ok := s.idempotency[idemKey]
		s.mu.Unlock()
		if ok {
			return s.Ledger.Get(existingID)
		}
	}

	seats, err := s.SeatsFor(tripID)
	if err != nil {
		return models.Booking{}, err
	}
	var selection []models.Seat
	for _, id := range seatIDs {
		selection = inventory.Select(seats, selection, id)
	}
	if len(selection) != len(seatIDs) {
		// a requested seat was unknown, already taken, or past the cap
		return models.Booking{}, domain.ConflictError{Resource: "seat", Msg: "requested seats are no longer available"}
	}

	passengers = append([]models.Passenger(nil), passengers...)
	for i := range passengers {
		passengers[i].Name = utils.NormalizeSpace(passengers[i].Name)
	}

	booking, err := s.Ledger.Commit(trip, selection, passengers, payer)
	if err != nil {
		return models.Booking{}, err
	}

	if idemKey != "" {
		s.mu.Lock()
		s.idempotency[idemKey] = booking.ID
		s.mu.Unlock()
	}

	s.persist()
	utils.LogEvent(s.RequestID, "booking", "commit", "booking_id="+booking.ID+" pnr="+booking.PNR)
	return booking, nil
}

// persist writes the full ledger through the store. The snapshot is
// taken under saveMu so commits on other trips cannot overtake it and
// land a stale file on top of a newer one.
func (s *BookingService) persist() {
	if s.Store == nil {
		return
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := s.Store.Save(s.Ledger.All()); err != nil {
		// the booking is committed; persistence is best-effort
		utils.LogEvent(s.RequestID, "booking", "persist", "save warning: "+err.Error())
	}
}

func (s *BookingService) lockFor(tripID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.tripLocks[tripID]
	if !ok {
		lock = &sync.Mutex{}
		s.tripLocks[tripID] = lock
	}
	return lock
}

func (s *BookingService) committedSeats(tripID string) map[string]bool {
	taken := map[string]bool{}
	for _, b := range s.Ledger.All() {
		if b.TripID != tripID {
			continue
		}
		for _, seat := range b.SelectedSeats {
			taken[seat.ID] = true
		}
	}
	return taken
}

// Summary mirrors the booking dashboard's headline numbers.
type Summary struct {
	Bookings    int   `json:"bookings"`
	TotalSpent  int64 `json:"total_spent"`
	ActiveCount int   `json:"active_count"`
}

func (s *BookingService) Summarize() Summary {
	return Summary{
		Bookings:    s.Ledger.Len(),
		TotalSpent:  s.Ledger.TotalSpent(),
		ActiveCount: s.Ledger.ActiveCount(),
	}
}
