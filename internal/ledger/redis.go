package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the ledger as a Redis list under a single key.
// RPUSH keeps insertion order, so LRANGE 0 -1 reads oldest first.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *logger.Logger
}

// NewRedisStore creates a Redis-backed ledger store.
func NewRedisStore(client *redis.Client, key string, log *logger.Logger) *RedisStore {
	return &RedisStore{client: client, key: key, log: log}
}

// Record appends a new entry to the list and returns it.
func (s *RedisStore) Record(ctx context.Context, kind transport.Kind, data transport.CanonicalSubmission) (Entry, error) {
	entry := newEntry(kind, data)

	raw, err := json.Marshal(entry)
	if err != nil {
		return Entry{}, fmt.Errorf("marshal ledger entry: %w", err)
	}

	if err := s.client.RPush(ctx, s.key, raw).Err(); err != nil {
		return Entry{}, fmt.Errorf("append ledger entry: %w", err)
	}

	return entry, nil
}

// List returns all recorded entries, oldest first. Unreadable storage and
// corrupt elements degrade to an empty or partial result instead of an
// error; the ledger is a display history, not a system of record.
func (s *RedisStore) List(ctx context.Context) ([]Entry, error) {
	raws, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		s.log.LedgerError("list", err)
		return []Entry{}, nil
	}

	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		var entry Entry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			s.log.LedgerError("decode", err)
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// Compile-time check that RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
