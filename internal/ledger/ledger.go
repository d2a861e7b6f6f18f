// Package ledger maintains the append-only history of attempted form
// submissions. It is the server-side replacement for the browser-local
// submission list the admin dashboard used to read, behind a store
// interface so the backing storage can change without touching call sites.
package ledger

import (
	"context"
	"time"

	"kynetic_backend/internal/submissions/transport"

	"github.com/google/uuid"
)

// Entry is one recorded submission attempt.
type Entry struct {
	ID        uuid.UUID                     `json:"id"`
	Kind      transport.Kind                `json:"kind"`
	Data      transport.CanonicalSubmission `json:"data"`
	CreatedAt time.Time                     `json:"createdAt"`
}

// Store is the append-only submission ledger. Entries are never mutated or
// deleted by the application; List returns them in insertion order, oldest
// first. A corrupt or unavailable store reads as empty rather than failing.
type Store interface {
	// Record appends a new entry with a fresh id and timestamp and returns it.
	Record(ctx context.Context, kind transport.Kind, data transport.CanonicalSubmission) (Entry, error)

	// List returns all recorded entries, oldest first. It never returns an
	// error for unreadable storage; unreadable means empty.
	List(ctx context.Context) ([]Entry, error)
}

func newEntry(kind transport.Kind, data transport.CanonicalSubmission) Entry {
	return Entry{
		ID:        uuid.New(),
		Kind:      kind,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
}
