package store

import (
	"context"
	"sync"

	"github.com/jamezpolley/publicwhip/pkg/divisions"
)

// Memory is an in-process DivisionStore used by tests and dry runs.
type Memory struct {
	mu      sync.Mutex
	records map[string]*divisions.DivisionRecord
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]*divisions.DivisionRecord)}
}

// UpsertDivision implements DivisionStore.
func (s *Memory) UpsertDivision(ctx context.Context, record *divisions.DivisionRecord) error {
	house, err := record.House.StorageName()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Date+"/"+record.Number+"/"+house] = record
	return nil
}

// Get returns the stored record for the natural key, if present. The
// house is given in the transcript vocabulary.
func (s *Memory) Get(date, number string, house divisions.House) (*divisions.DivisionRecord, bool) {
	storageHouse, err := house.StorageName()
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[date+"/"+number+"/"+storageHouse]
	return record, ok
}

// Len returns the number of stored records.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Close implements DivisionStore.
func (s *Memory) Close() error {
	return nil
}
