package dnatraits

import (
	"context"
	"fmt"
	"os"
	"sync"

	farm "github.com/dgryski/go-farm"
)

// Cache memoizes ParseFile results within one process, keyed by a
// farm.Hash64WithSeed digest of the path plus the file's size and
// modification time. It exists because a single process invocation (the
// cmd/bio-dnatraits "intersect" subcommand, in particular) may ask to load
// the same path twice, and re-parsing a multi-hundred-megabyte
// file a second time is exactly the cost spec.md is concerned with
// avoiding.
//
// Grounded in fusion/kmer_index.go's use of farm.Hash64WithSeed to key its
// sharded kmer table.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]*Genome
}

// NewCache returns an empty parse cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]*Genome)}
}

// Get returns a Genome for path, parsing it on a cache miss and cloning it
// on a cache hit so that concurrent callers can never observe each other's
// mutations (Genome.Clone's deep-copy semantics, per spec.md's lifecycle
// note).
func (c *Cache) Get(ctx context.Context, path string) (*Genome, error) {
	key := cacheKey(path)

	c.mu.Lock()
	if g, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return g.Clone(), nil
	}
	c.mu.Unlock()

	g := New(0)
	if err := ParseFile(ctx, path, g); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = g
	c.mu.Unlock()
	return g.Clone(), nil
}

func cacheKey(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		// A non-local (e.g. s3://) path won't stat locally; fall back to
		// hashing the path alone, so a change to such a file's size or
		// mtime does not change its key.
		return farm.Hash64WithSeed([]byte(path), 0)
	}
	digestInput := fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
	return farm.Hash64WithSeed([]byte(digestInput), 0)
}
