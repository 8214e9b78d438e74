// Package store is a single-file JSON document store in the lowdb mould:
// every collection lives in memory as an ordered slice and the whole
// document is flushed to disk after each successful mutation.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"bistro-pos-service/internal/models"
)

// Data is the full document. Collection names match the JSON file keys.
type Data struct {
	Users                []models.User              `json:"users"`
	Categories           []models.Category          `json:"categories"`
	SubCategories        []models.SubCategory       `json:"subCategories"`
	MenuItems            []models.MenuItem          `json:"menuItems"`
	AreaTables           []models.AreaTable         `json:"areaTables"`
	Tables               []models.Table             `json:"tables"`
	Orders               []models.Order             `json:"orders"`
	OrderHistory         []models.OrderHistoryEntry `json:"orderHistory"`
	Feedback             []models.Feedback          `json:"feedback"`
	Statistics           []models.DailyStatistic    `json:"statistics"`
	AggregatedStatistics []models.MonthlyStatistic  `json:"aggregatedStatistics"`
}

func emptyData() *Data {
	return &Data{
		Users:                []models.User{},
		Categories:           []models.Category{},
		SubCategories:        []models.SubCategory{},
		MenuItems:            []models.MenuItem{},
		AreaTables:           []models.AreaTable{},
		Tables:               []models.Table{},
		Orders:               []models.Order{},
		OrderHistory:         []models.OrderHistoryEntry{},
		Feedback:             []models.Feedback{},
		Statistics:           []models.DailyStatistic{},
		AggregatedStatistics: []models.MonthlyStatistic{},
	}
}

// Store owns the document and serializes all access through one mutex.
// Rollover reads and rewrites several collections in one sequence, so the
// lock has to cover whole mutation sequences, not single collection ops.
type Store struct {
	mu   sync.Mutex
	path string
	data *Data
}

// New returns a store with empty collections that will flush to path.
func New(path string) *Store {
	return &Store{path: path, data: emptyData()}
}

// Open loads the document at path, starting from empty collections when the
// file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path, data: emptyData()}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return nil, fmt.Errorf("parse store file %s: %w", path, err)
	}
	return s, nil
}

// View runs fn with shared access to the document. fn must not retain or
// mutate the data.
func (s *Store) View(fn func(d *Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Update runs fn with exclusive access and flushes the whole document when
// fn succeeds. A failed flush leaves the in-memory state applied; callers
// accept partially durable state rather than wrapping in transactions.
func (s *Store) Update(fn func(d *Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.data); err != nil {
		return err
	}
	return s.flush()
}

// Replace swaps in a whole new document and flushes it. Used by the seeder.
func (s *Store) Replace(d *Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
	return s.flush()
}

func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".store-*.json")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}
