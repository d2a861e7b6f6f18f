package ledger

import (
	"context"
	"testing"

	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testLogger() *logger.Logger {
	return logger.New("development")
}

func TestMemoryStoreRecordAndList(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first, err := store.Record(ctx, transport.KindContact, transport.CanonicalSubmission{Name: "Ola"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	second, err := store.Record(ctx, transport.KindNewsletter, transport.CanonicalSubmission{Name: "Kari"})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	if first.ID == second.ID {
		t.Fatal("entries should get distinct ids")
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("entry should be timestamped")
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Fatal("entries out of insertion order")
	}
	if entries[1].Kind != transport.KindNewsletter || entries[1].Data.Name != "Kari" {
		t.Fatalf("last entry = %+v", entries[1])
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Record(ctx, transport.KindContact, transport.CanonicalSubmission{Name: "Ola"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, _ := store.List(ctx)
	entries[0].Data.Name = "tampered"

	again, _ := store.List(ctx)
	if again[0].Data.Name != "Ola" {
		t.Fatal("List result mutation leaked into the store")
	}
}

func TestMemoryStoreEmptyList(t *testing.T) {
	entries, err := NewMemoryStore().List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("len = %d, want 0", len(entries))
	}
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "submissions", testLogger()), srv, client
}

func TestRedisStoreRecordAndList(t *testing.T) {
	store, _, _ := newRedisStore(t)
	ctx := context.Background()

	entry, err := store.Record(ctx, transport.KindPriceQuote, transport.CanonicalSubmission{
		Name:    "Ola",
		Company: "Ola AS",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("len = %d, want 1", len(entries))
	}
	if entries[0].ID != entry.ID || entries[0].Kind != transport.KindPriceQuote {
		t.Fatalf("entry = %+v", entries[0])
	}
	if entries[0].Data.Company != "Ola AS" {
		t.Fatalf("data = %+v", entries[0].Data)
	}
}

func TestRedisStoreOrdering(t *testing.T) {
	store, _, _ := newRedisStore(t)
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, name := range names {
		if _, err := store.Record(ctx, transport.KindContact, transport.CanonicalSubmission{Name: name}); err != nil {
			t.Fatalf("Record %s: %v", name, err)
		}
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, name := range names {
		if entries[i].Data.Name != name {
			t.Fatalf("entries[%d].Name = %q, want %q", i, entries[i].Data.Name, name)
		}
	}
}

func TestRedisStoreSkipsCorruptEntries(t *testing.T) {
	store, srv, _ := newRedisStore(t)
	ctx := context.Background()

	if _, err := store.Record(ctx, transport.KindContact, transport.CanonicalSubmission{Name: "Ola"}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if _, err := srv.RPush("submissions", "{not valid json"); err != nil {
		t.Fatalf("RPush garbage: %v", err)
	}
	if _, err := store.Record(ctx, transport.KindContact, transport.CanonicalSubmission{Name: "Kari"}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2 (corrupt element skipped)", len(entries))
	}
	if entries[0].Data.Name != "Ola" || entries[1].Data.Name != "Kari" {
		t.Fatalf("entries = %+v", entries)
	}
}

func TestRedisStoreUnavailableReadsAsEmpty(t *testing.T) {
	store, srv, _ := newRedisStore(t)
	srv.Close()

	entries, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List on unavailable store should not error, got %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("len = %d, want 0", len(entries))
	}
}

func TestRedisStoreRecordFailsWhenUnavailable(t *testing.T) {
	store, srv, _ := newRedisStore(t)
	srv.Close()

	if _, err := store.Record(context.Background(), transport.KindContact, transport.CanonicalSubmission{}); err == nil {
		t.Fatal("Record against unavailable store should error")
	}
}
