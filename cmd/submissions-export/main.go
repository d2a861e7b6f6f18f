// Command submissions-export dumps the submission ledger to stdout as JSON.
// It talks straight to the Redis ledger, so it works even when the API is
// down. Typical use:
//
//	submissions-export -kind contact > contact-submissions.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"kynetic_backend/internal/ledger"
	"kynetic_backend/internal/submissions/transport"
	"kynetic_backend/platform/logger"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	_ = godotenv.Load()

	var (
		redisURL = flag.String("redis-url", os.Getenv("REDIS_URL"), "Redis connection URL (defaults to REDIS_URL)")
		key      = flag.String("key", envOr("SUBMISSIONS_LEDGER_KEY", "submissions"), "Redis key holding the ledger")
		kind     = flag.String("kind", "", "only export submissions of this kind (contact, calculator, newsletter, price-quote)")
	)
	flag.Parse()

	if err := run(*redisURL, *key, transport.Kind(*kind)); err != nil {
		fmt.Fprintln(os.Stderr, "submissions-export:", err)
		os.Exit(1)
	}
}

func run(redisURL, key string, kind transport.Kind) error {
	if redisURL == "" {
		return fmt.Errorf("REDIS_URL is required (the in-memory ledger cannot be exported)")
	}
	if kind != "" && !kind.Valid() {
		return fmt.Errorf("unknown submission kind %q", kind)
	}

	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalid redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}

	store := ledger.NewRedisStore(client, key, logger.New(envOr("APP_ENV", "production")))
	entries, err := store.List(ctx)
	if err != nil {
		return err
	}

	if kind != "" {
		filtered := make([]ledger.Entry, 0, len(entries))
		for _, entry := range entries {
			if entry.Kind == kind {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
