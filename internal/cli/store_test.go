package cli

import (
	"context"
	"testing"

	"github.com/dalmcut/dalmcut/pkg/config"
)

func TestOpenStoreReturnsNilWhenMongoURIUnset(t *testing.T) {
	st, err := openStore(context.Background(), config.Default())
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	if st != nil {
		t.Error("expected a nil store when cfg.Store.MongoURI is empty")
	}
}
