package ledger

import (
	"context"
	"sync"

	"kynetic_backend/internal/submissions/transport"
)

// MemoryStore is the in-process ledger used when no Redis is configured.
// Like the browser-local list it replaces, its lifetime is bound to one
// process and it is not shared across instances.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore creates an empty in-memory ledger.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Record appends a new entry and returns it.
func (s *MemoryStore) Record(_ context.Context, kind transport.Kind, data transport.CanonicalSubmission) (Entry, error) {
	entry := newEntry(kind, data)

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	return entry, nil
}

// List returns all entries in insertion order.
func (s *MemoryStore) List(_ context.Context) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Compile-time check that MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
