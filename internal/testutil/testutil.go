// Package testutil provides shared helpers for tests that need external
// infrastructure. Redis-backed tests are skipped when no server is
// reachable so the unit suite stays runnable everywhere.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// TestRedisAddr returns the Redis address used for tests.
// TEST_REDIS_ADDR overrides the default local address.
func TestRedisAddr() string {
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		return addr
	}
	return "localhost:6379"
}

// SetupTestRedis creates a Redis client for testing. The test is skipped
// if Redis is not available, unless TEST_REQUIRE_REDIS=true makes the
// absence fatal (CI).
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: TestRedisAddr()})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client after ping error: %v", cerr)
		}
		if os.Getenv("TEST_REQUIRE_REDIS") == "true" {
			t.Fatalf("Redis not available for testing: %v", err)
		}
		t.Skipf("Redis not available for testing: %v", err)
	}

	t.Cleanup(func() {
		if cerr := client.Close(); cerr != nil {
			t.Logf("warning: failed to close redis client: %v", cerr)
		}
	})

	return client
}
