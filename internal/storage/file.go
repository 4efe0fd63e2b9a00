package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"busbooking/internal/domain/models"
)

// FileStore keeps the ledger as a JSON document on disk, the same
// shape the browser build kept under its "bookings" storage key.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) Save(bookings []models.Booking) error {
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path)
}

// Load reads the persisted ledger. A missing or corrupt file degrades
// to an empty ledger: retrieval must never fail because prior state is
// unreadable.
func (s *FileStore) Load() ([]models.Booking, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Booking{}, nil
		}
		log.Printf("[STORAGE] action=load msg=read failed, starting empty: %v", err)
		return []models.Booking{}, nil
	}
	var bookings []models.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("[STORAGE] action=load msg=corrupt ledger file %s, starting empty: %v", s.Path, err)
		return []models.Booking{}, nil
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}
