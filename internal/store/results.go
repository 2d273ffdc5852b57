package store

import (
	"slices"
	"sync"

	"github.com/kurochkinivan/transcript_extractor/internal/domain"
)

// Results holds every record extracted since the process started.
type Results struct {
	mu      sync.RWMutex
	records []*domain.Record
}

func NewResults() *Results {
	return &Results{}
}

func (s *Results) Append(record *domain.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
}

// All returns a snapshot of the stored records in append order.
// The result is never nil.
func (s *Results) All() []*domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.records == nil {
		return []*domain.Record{}
	}

	return slices.Clone(s.records)
}

func (s *Results) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}
