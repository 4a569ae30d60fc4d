// Package cache stores byte payloads keyed by task and pattern/state
// content hashes. pkg/factory uses it to memoize landmark-graph query
// results, so a repeated query skips the cut-driver sweeps; the
// abstractions themselves are rebuilt whenever a factory is constructed.
//
// Adapted from the teacher's pkg/cache: same Cache/Keyer split, same
// null-object and key-scoping patterns (null.go, scoped.go), but the keyed
// concerns are dalmcut's own (abstractions and landmark graphs) rather than
// the teacher's HTTP responses, dependency graphs, layouts, and artifacts.
package cache

import (
	"context"
	"time"
)

// Cache stores and retrieves arbitrary byte payloads (such as gob-encoded
// landmark graphs from landmark.Graph.Serialize) by key.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
