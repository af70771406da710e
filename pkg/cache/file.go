package cache

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/dotstyle/pkg/observability"
)

// entryMagic starts every entry file. It is followed by the expiry as
// big-endian Unix nanoseconds (zero never expires) and then the payload.
var entryMagic = []byte("DSC1")

const headerLen = 4 + 8

// FileCache stores one file per entry below a directory, fanned out into
// subdirectories by the first byte of the key hash. Writes go through a
// temporary file and a rename, so concurrent CLI runs never read a partial
// entry. Hits, misses and writes are reported to the registered cache hooks.
type FileCache struct {
	dir string
}

var _ Cache = (*FileCache)(nil)

// NewFileCache creates a file cache in dir, creating the directory if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get returns the entry for key. Expired and unreadable entries are removed
// and count as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	hooks := observability.Cache()
	path := c.path(key)

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		hooks.OnCacheMiss(ctx, KeyType(key))
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}

	data, ok := decodeEntry(raw, time.Now())
	if !ok {
		_ = os.Remove(path)
		hooks.OnCacheMiss(ctx, KeyType(key))
		return nil, false, nil
	}
	hooks.OnCacheHit(ctx, KeyType(key))
	return data, true, nil
}

// Set stores data under key.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expires int64
	if ttl > 0 {
		expires = time.Now().Add(ttl).UnixNano()
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".entry-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(encodeHeader(expires)); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}

	observability.Cache().OnCacheSet(ctx, KeyType(key), len(data))
	return nil
}

// Delete removes key.
func (c *FileCache) Delete(_ context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+".entry")
}

func encodeHeader(expires int64) []byte {
	hdr := make([]byte, headerLen)
	copy(hdr, entryMagic)
	binary.BigEndian.PutUint64(hdr[len(entryMagic):], uint64(expires))
	return hdr
}

// decodeEntry returns the payload of raw, or false if raw is not an entry or
// has expired at now.
func decodeEntry(raw []byte, now time.Time) ([]byte, bool) {
	if len(raw) < headerLen || !bytes.Equal(raw[:len(entryMagic)], entryMagic) {
		return nil, false
	}
	expires := int64(binary.BigEndian.Uint64(raw[len(entryMagic):headerLen]))
	if expires != 0 && now.UnixNano() > expires {
		return nil, false
	}
	return raw[headerLen:], true
}
