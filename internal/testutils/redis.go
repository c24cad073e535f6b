// Package testutils provides shared helpers for package tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/gw2-api/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client for
// it. Both are closed when the test ends. The server is returned so tests
// can inspect keys or move time forward with FastForward.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.NewClient(&redis.Options{Addrs: []string{mr.Addr()}})
	require.NoError(t, err, "failed to create redis client")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, mr
}
