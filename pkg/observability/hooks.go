// Package observability provides hooks for metrics, tracing, and logging
// around abstraction construction, lm-cut iteration, and landmark-graph
// queries, without adding a hard dependency on any specific backend.
//
// Adapted from the teacher's pkg/observability/hooks.go: same hooks
// pattern (interface per event category, no-op defaults, global registry
// guarded by a RWMutex, callers register at startup so libraries stay
// dependency-free), rewired for dalmcut's own event categories instead of
// the teacher's parse/layout/render pipeline.
package observability

import (
	"context"
	"sync"
	"time"
)

// AbstractionHooks receives events from building abstractions (projection
// or justification-graph).
type AbstractionHooks interface {
	OnBuildStart(ctx context.Context, kind string, pattern []int)
	OnBuildComplete(ctx context.Context, kind string, numStates, numLabels int, duration time.Duration, err error)
}

// LMCutHooks receives events from the relaxed exploration engine's
// iteration loop.
type LMCutHooks interface {
	OnIterationStart(ctx context.Context)
	OnIterationComplete(ctx context.Context, cutSize, delta int, duration time.Duration)
	OnDeadEnd(ctx context.Context)
}

// LandmarkGraphHooks receives events from landmark-graph queries.
type LandmarkGraphHooks interface {
	OnQueryStart(ctx context.Context, numAbstractions int)
	OnQueryComplete(ctx context.Context, numLandmarks int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopAbstractionHooks is a no-op implementation of AbstractionHooks.
type NoopAbstractionHooks struct{}

func (NoopAbstractionHooks) OnBuildStart(context.Context, string, []int)                       {}
func (NoopAbstractionHooks) OnBuildComplete(context.Context, string, int, int, time.Duration, error) {}

// NoopLMCutHooks is a no-op implementation of LMCutHooks.
type NoopLMCutHooks struct{}

func (NoopLMCutHooks) OnIterationStart(context.Context)                            {}
func (NoopLMCutHooks) OnIterationComplete(context.Context, int, int, time.Duration) {}
func (NoopLMCutHooks) OnDeadEnd(context.Context)                                    {}

// NoopLandmarkGraphHooks is a no-op implementation of LandmarkGraphHooks.
type NoopLandmarkGraphHooks struct{}

func (NoopLandmarkGraphHooks) OnQueryStart(context.Context, int)                     {}
func (NoopLandmarkGraphHooks) OnQueryComplete(context.Context, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	abstractionHooks AbstractionHooks   = NoopAbstractionHooks{}
	lmcutHooks       LMCutHooks         = NoopLMCutHooks{}
	landmarkHooks    LandmarkGraphHooks = NoopLandmarkGraphHooks{}
	cacheHooks       CacheHooks         = NoopCacheHooks{}
	hooksMu          sync.RWMutex
)

// SetAbstractionHooks registers custom abstraction-build hooks. Call once
// at startup before building any abstraction.
func SetAbstractionHooks(h AbstractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		abstractionHooks = h
	}
}

// SetLMCutHooks registers custom lm-cut iteration hooks.
func SetLMCutHooks(h LMCutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		lmcutHooks = h
	}
}

// SetLandmarkGraphHooks registers custom landmark-graph query hooks.
func SetLandmarkGraphHooks(h LandmarkGraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		landmarkHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Abstraction returns the registered abstraction-build hooks.
func Abstraction() AbstractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return abstractionHooks
}

// LMCut returns the registered lm-cut iteration hooks.
func LMCut() LMCutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return lmcutHooks
}

// LandmarkGraph returns the registered landmark-graph query hooks.
func LandmarkGraph() LandmarkGraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return landmarkHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults, primarily useful for
// tests.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	abstractionHooks = NoopAbstractionHooks{}
	lmcutHooks = NoopLMCutHooks{}
	landmarkHooks = NoopLandmarkGraphHooks{}
	cacheHooks = NoopCacheHooks{}
}
