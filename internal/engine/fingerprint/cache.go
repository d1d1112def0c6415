// Package fingerprint suppresses no-op change events by comparing content
// digests across deliveries of the same path.
package fingerprint

import (
	"fmt"
	"io"
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Cache remembers the last observed content digest per path. A modification
// whose digest matches the recorded one is a no-op (editor metadata touch or
// duplicate OS notification) and is suppressed.
//
// The cache is owned by a single watch session and lives only for its
// duration; it is not persisted across restarts.
type Cache struct {
	mu      sync.Mutex
	digests map[unique.Handle[string]]string
}

// NewCache creates an empty fingerprint cache.
func NewCache() *Cache {
	return &Cache{
		digests: make(map[unique.Handle[string]]string),
	}
}

// ShouldEmit reports whether an event for the path with the given digest
// carries new content. Unknown paths always emit.
func (c *Cache) ShouldEmit(path, digest string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.digests[unique.Make(path)]
	return !ok || last != digest
}

// Record stores the digest as the last observed content for the path.
func (c *Cache) Record(path, digest string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.digests[unique.Make(path)] = digest
}

// Evict forgets the path. Called on deletion: a missing file has no digest,
// and a later re-creation must always emit.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.digests, unique.Make(path))
}

// Len returns the number of tracked paths.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.digests)
}

// DigestFile computes the content digest of the file at path. The digest is
// a change-detection heuristic, not a security control, so a fast 64-bit
// hash is sufficient.
func DigestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the filesystem watch
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file for digest"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
