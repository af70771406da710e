// Package cache stores imported graph snapshots and rendered artifacts.
//
// Entries are addressed by keys built with a [Keyer]: the content hash of
// the input plus every option that changes the output. A changed option is a
// different key, so entries never need invalidation beyond their TTL.
//
// [FileCache] is used by the CLI; [NullCache] disables caching.
package cache

import (
	"context"
	"strings"
	"time"
)

// Key types reported to the cache hooks.
const (
	KeyTypeGraph  = "graph"
	KeyTypeRender = "render"
)

// Cache is a byte store with optional expiration.
type Cache interface {
	// Get returns the stored data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// GraphKey addresses the visual graphs imported from a DOT source.
	GraphKey(sourceHash string, opts GraphKeyOpts) string
	// RenderKey addresses an artifact rendered from DOT text.
	RenderKey(dotHash string, opts RenderKeyOpts) string
}

// GraphKeyOpts are the import options that change the imported graphs.
type GraphKeyOpts struct {
	ColorScheme string `json:"color_scheme"`
}

// RenderKeyOpts are the render options that change the artifact.
type RenderKeyOpts struct {
	Format string  `json:"format"`
	Layout string  `json:"layout"`
	Scale  float64 `json:"scale"`
}

// DefaultKeyer builds unprefixed keys of the form type:hash.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GraphKey implements Keyer.
func (DefaultKeyer) GraphKey(sourceHash string, opts GraphKeyOpts) string {
	return hashKey(KeyTypeGraph, sourceHash, opts)
}

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(dotHash string, opts RenderKeyOpts) string {
	return hashKey(KeyTypeRender, dotHash, opts)
}

// KeyType returns the type segment of a key built by a [Keyer], ignoring any
// scope prefix. It returns "" for keys without a type.
func KeyType(key string) string {
	i := strings.LastIndexByte(key, ':')
	if i < 0 {
		return ""
	}
	head := key[:i]
	return head[strings.LastIndexByte(head, ':')+1:]
}
