package inventory

import (
	"testing"

	"busbooking/internal/domain/models"
)

func testTrip(total, available int, price int64) models.Trip {
	return models.Trip{
		ID:             "trip-1",
		Operator:       "Express Travels",
		From:           "Mumbai",
		To:             "Pune",
		Price:          price,
		TotalSeats:     total,
		AvailableSeats: available,
	}
}

func TestBuildLayoutCounts(t *testing.T) {
	trip := testTrip(40, 12, 450)
	seats := Build(trip)

	if len(seats) != 40 {
		t.Fatalf("expected 40 seats, got %d", len(seats))
	}
	unavailable := 0
	for i, s := range seats {
		if !s.IsAvailable {
			unavailable++
			if i >= 28 {
				t.Fatalf("seat at position %d should be available", i+1)
			}
		}
		if s.Price != 450 {
			t.Fatalf("seat %s price = %d, want flat 450", s.ID, s.Price)
		}
	}
	if unavailable != 28 {
		t.Fatalf("expected 28 pre-booked seats, got %d", unavailable)
	}
}

func TestBuildSeatNumbersDeterministic(t *testing.T) {
	trip := testTrip(10, 10, 100)
	first := Build(trip)
	second := Build(trip)

	want := []string{"1A", "1B", "1C", "1D", "2A", "2B", "2C", "2D", "3A", "3B"}
	for i, s := range first {
		if s.Number != want[i] {
			t.Fatalf("seat %d number = %q, want %q", i+1, s.Number, want[i])
		}
		if second[i].Number != s.Number {
			t.Fatalf("rebuild gave different number at %d: %q vs %q", i+1, second[i].Number, s.Number)
		}
	}
}

func TestBuildSeatTypes(t *testing.T) {
	seats := Build(testTrip(8, 8, 100))
	wantWindow := map[int]bool{1: true, 4: true, 5: true, 8: true}
	for i, s := range seats {
		pos := i + 1
		if wantWindow[pos] && s.Type != models.SeatWindow {
			t.Fatalf("position %d type = %s, want window", pos, s.Type)
		}
		if !wantWindow[pos] && s.Type != models.SeatAisle {
			t.Fatalf("position %d type = %s, want aisle", pos, s.Type)
		}
	}
}

func TestBuildEmptyTrip(t *testing.T) {
	seats := Build(testTrip(0, 0, 100))
	if len(seats) != 0 {
		t.Fatalf("empty trip should yield empty layout, got %d seats", len(seats))
	}
	sel := Select(seats, nil, "seat-1")
	if len(sel) != 0 {
		t.Fatalf("selection on empty layout should stay empty, got %d", len(sel))
	}
}

func TestBuildPartialLastRow(t *testing.T) {
	seats := Build(testTrip(6, 6, 100))
	if got := seats[5].Number; got != "2B" {
		t.Fatalf("seat 6 number = %q, want 2B", got)
	}
}

func TestSelectToggle(t *testing.T) {
	seats := Build(testTrip(8, 3, 100))

	sel := Select(seats, nil, "seat-6")
	if len(sel) != 1 || sel[0].ID != "seat-6" {
		t.Fatalf("expected selection [seat-6], got %v", sel)
	}
	sel = Select(seats, sel, "seat-7")
	if len(sel) != 2 || sel[1].ID != "seat-7" {
		t.Fatalf("expected selection [seat-6 seat-7], got %v", sel)
	}

	// double-toggle returns to the original selection
	sel = Select(seats, sel, "seat-7")
	if len(sel) != 1 || sel[0].ID != "seat-6" {
		t.Fatalf("expected toggle-off back to [seat-6], got %v", sel)
	}
}

func TestSelectRejectsUnavailableAndUnknown(t *testing.T) {
	seats := Build(testTrip(8, 3, 100))

	sel := Select(seats, nil, "seat-1") // pre-booked
	if len(sel) != 0 {
		t.Fatalf("unavailable seat must not be selectable, got %v", sel)
	}
	sel = Select(seats, nil, "seat-99")
	if len(sel) != 0 {
		t.Fatalf("unknown seat must not be selectable, got %v", sel)
	}
}

func TestSelectCap(t *testing.T) {
	seats := Build(testTrip(8, 8, 100))
	var sel []models.Seat
	for _, id := range []string{"seat-1", "seat-2", "seat-3", "seat-4"} {
		sel = Select(seats, sel, id)
	}
	if len(sel) != MaxSelectable {
		t.Fatalf("expected %d selected, got %d", MaxSelectable, len(sel))
	}

	capped := Select(seats, sel, "seat-5")
	if len(capped) != MaxSelectable {
		t.Fatalf("5th select must be a no-op, got %d seats", len(capped))
	}
	for i := range sel {
		if capped[i].ID != sel[i].ID {
			t.Fatalf("selection changed at %d: %s vs %s", i, capped[i].ID, sel[i].ID)
		}
	}
}

func TestSelectValueSemantics(t *testing.T) {
	seats := Build(testTrip(8, 8, 100))
	orig := Select(seats, nil, "seat-1")
	_ = Select(seats, orig, "seat-2")
	if len(orig) != 1 {
		t.Fatalf("input selection mutated, len=%d", len(orig))
	}
}

func TestPriceOf(t *testing.T) {
	seats := Build(testTrip(8, 3, 100))
	sel := Select(seats, nil, "seat-6")
	sel = Select(seats, sel, "seat-7")
	if got := PriceOf(sel); got != 200 {
		t.Fatalf("PriceOf = %d, want 200", got)
	}
	if got := PriceOf(nil); got != 0 {
		t.Fatalf("PriceOf(nil) = %d, want 0", got)
	}
}
