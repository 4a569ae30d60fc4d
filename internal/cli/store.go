package cli

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dalmcut/dalmcut/pkg/cache"
	"github.com/dalmcut/dalmcut/pkg/config"
	"github.com/dalmcut/dalmcut/pkg/factory"
	"github.com/dalmcut/dalmcut/pkg/landmark"
	"github.com/dalmcut/dalmcut/pkg/store"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// storeDatabase and storeCollection name the Mongo database/collection every
// dalmcut command persists query history to; config.StoreConfig carries only
// the connection URI, so these are fixed rather than user-configurable.
const (
	storeDatabase   = "dalmcut"
	storeCollection = "queries"
)

// openStore opens the query-history store cfg.Store.MongoURI names, or
// returns a nil store when persistence is disabled.
func openStore(ctx context.Context, cfg config.Config) (*store.Store, error) {
	if cfg.Store.MongoURI == "" {
		return nil, nil
	}
	return store.Open(ctx, cfg.Store.MongoURI, storeDatabase, storeCollection)
}

// persistQueryResult opens cfg's store (if configured), saves a QueryResult
// for the graph f just computed for state, and closes the connection again.
// It is a no-op when cfg.Store.MongoURI is unset.
func persistQueryResult(ctx context.Context, cfg config.Config, taskPath, cfgPath string, state task.State, f *factory.AbstractionCutFactory, g *landmark.Graph, duration time.Duration) error {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if st == nil {
		return nil
	}
	defer st.Close(ctx)

	result := landmark.NewQueryResult(
		uuid.New().String(),
		cache.Hash([]byte(taskPath)),
		cache.Hash([]byte(cfgPath)),
		factory.StateHash(state),
		f.NumAbstractions(),
		duration,
		g,
	)
	return st.Save(ctx, result)
}
