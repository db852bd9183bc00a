// Package storage is the durable backing for the console core: a small
// key-value table where each value is a JSON-encoded blob. Subsystems own
// disjoint keys and never touch each other's entries.
package storage

import (
	"errors"
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Logical keys used by the core. The UI keeps its own keys (theme mode etc.)
// in the same table; the core never reads those.
const (
	KeyAccounts         = "accounts"
	KeyActiveAccount    = "active_account"
	KeyOperationHistory = "operation_history"
)

// Entry is one persisted key-value pair.
type Entry struct {
	Key       string `gorm:"primaryKey"`
	Value     string // JSON-encoded
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store wraps the sqlite-backed entry table.
type Store struct {
	db *gorm.DB
}

// Open initializes the database connection and runs migrations.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a throwaway in-memory store, used by tests and by the
// daemon when no persistence path is configured.
func OpenInMemory() (*Store, error) {
	return Open("file::memory:?cache=shared&_pragma=busy_timeout(5000)")
}

// Get returns the value stored under key and whether it was present.
// A read failure is reported as absence; callers fall back to their
// empty-state defaults rather than failing startup.
func (s *Store) Get(key string) (string, bool) {
	var entry Entry
	if err := s.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("⚠️ storage: read %q failed: %v", key, err)
		}
		return "", false
	}
	return entry.Value, true
}

// Put upserts the value under key.
func (s *Store) Put(key, value string) error {
	var existing Entry
	err := s.db.Where("key = ?", key).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.Create(&Entry{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&Entry{}).Where("key = ?", key).Update("value", value).Error
}

// Delete removes the entry under key. Deleting an absent key is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Where("key = ?", key).Delete(&Entry{}).Error
}
