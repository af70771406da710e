package cache

import (
	"context"
	"time"

	"github.com/matzehuels/dotstyle/pkg/observability"
)

// NullCache stores nothing. Every Get is a miss and is reported as one, so
// metrics still show how many lookups ran with caching disabled.
type NullCache struct{}

var _ Cache = NullCache{}

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, KeyType(key))
	return nil, false, nil
}

func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NullCache) Delete(context.Context, string) error { return nil }

func (NullCache) Close() error { return nil }
