package storage

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"busbooking/internal/domain/models"
)

func TestMySQLStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))

	store := NewMySQLStore(db)
	if err := store.Save([]models.Booking{sampleBooking()}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStoreSaveEnsuresTableOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(2, 1))

	store := NewMySQLStore(db)
	if err := store.Save([]models.Booking{sampleBooking()}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if err := store.Save([]models.Booking{sampleBooking()}); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStoreConcurrentSaves(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	const workers = 4
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < workers; i++ {
		mock.ExpectExec("INSERT INTO bookings").
			WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}

	store := NewMySQLStore(db)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.Save([]models.Booking{sampleBooking()}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("save failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestMySQLStoreLoadRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	want := sampleBooking()
	seats, _ := json.Marshal(want.SelectedSeats)
	passengers, _ := json.Marshal(want.Passengers)

	cols := []string{"id", "trip_id", "selected_seats", "passengers", "total_amount", "payer_identity", "booking_date", "status", "pnr"}
	rows := sqlmock.NewRows(cols).AddRow(
		want.ID, want.TripID, seats, passengers,
		want.TotalAmount, want.PayerIdentity, want.BookingDate, string(want.Status), want.PNR,
	)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY seq ASC").
		WillReturnRows(rows)

	store := NewMySQLStore(db)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(got))
	}
	if got[0].ID != want.ID || got[0].PNR != want.PNR || got[0].TotalAmount != want.TotalAmount {
		t.Fatalf("scalar fields lost: %+v", got[0])
	}
	if len(got[0].SelectedSeats) != 2 || got[0].SelectedSeats[0].Number != "2B" {
		t.Fatalf("seat sub-structure lost: %+v", got[0].SelectedSeats)
	}
	if len(got[0].Passengers) != 2 || got[0].Passengers[1].Name != "Ravi" {
		t.Fatalf("passenger sub-structure lost: %+v", got[0].Passengers)
	}
	if !got[0].BookingDate.Equal(want.BookingDate) {
		t.Fatalf("booking date = %v, want %v", got[0].BookingDate, want.BookingDate)
	}
}

func TestMySQLStoreLoadSkipsCorruptRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	good := sampleBooking()
	seats, _ := json.Marshal(good.SelectedSeats)
	passengers, _ := json.Marshal(good.Passengers)

	cols := []string{"id", "trip_id", "selected_seats", "passengers", "total_amount", "payer_identity", "booking_date", "status", "pnr"}
	rows := sqlmock.NewRows(cols).
		AddRow("b-bad", "1", []byte("{broken"), passengers, int64(100), "x@example.com", time.Now(), "confirmed", "BGAAAAAA").
		AddRow(good.ID, good.TripID, seats, passengers, good.TotalAmount, good.PayerIdentity, good.BookingDate, string(good.Status), good.PNR)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS bookings").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT (.+) FROM bookings ORDER BY seq ASC").
		WillReturnRows(rows)

	store := NewMySQLStore(db)
	got, err := store.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != good.ID {
		t.Fatalf("expected only the intact row, got %+v", got)
	}
}
