package cli

import (
	"github.com/dalmcut/dalmcut/pkg/cache"
	"github.com/dalmcut/dalmcut/pkg/config"
	"github.com/dalmcut/dalmcut/pkg/factory"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// newFactory builds the abstraction-cut factory every command needs to
// answer landmark-graph queries against t under cfg, and memoizes
// ComputeLandmarkGraph against the configured cache backend, keyed by
// taskPath/cfgPath (stand-ins for the task's and configuration's content,
// cheap enough to hash per invocation rather than requiring callers to
// pass the already-loaded bytes back in).
func newFactory(cfg config.Config, t task.AbstractTask, taskPath, cfgPath string) (*factory.AbstractionCutFactory, error) {
	f, err := factory.NewAbstractionCutFactory(cfg, t)
	if err != nil {
		return nil, err
	}

	backend, err := newCacheBackend(cfg)
	if err != nil {
		return nil, err
	}
	taskHash := cache.Hash([]byte(taskPath))
	configHash := cache.Hash([]byte(cfgPath))
	f.EnableCache(backend, cache.NewDefaultKeyer(), taskHash, configHash)

	return f, nil
}
