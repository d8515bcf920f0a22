package llmlog

import (
	"context"
	"sync"

	"roomreport/internal/model/llmcall"
)

// MemorySink collects records in memory. Used by tests and as a stand-in
// sink when no database is available.
type MemorySink struct {
	mu      sync.Mutex
	records []llmcall.Record
}

// Write appends the record.
func (s *MemorySink) Write(_ context.Context, rec llmcall.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Records returns a copy of everything written so far.
func (s *MemorySink) Records() []llmcall.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llmcall.Record(nil), s.records...)
}
