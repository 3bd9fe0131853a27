// Package memo is an explicit memoization layer for expensive engine
// computations (classification passes, trend fits). Keys combine a
// content hash of the filtered snapshot with the operation name and
// its parameters; changing the underlying snapshot invalidates
// everything at once via Rekey. The engine never requires the memo —
// every computation is also callable cold.
package memo

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"github.com/thesixthai/brandpulse/internal/model"
)

// SnapshotHash computes a content hash over an account snapshot. Two
// filtered views with identical content hash identically regardless of
// how they were produced.
func SnapshotHash(accounts []model.Account) string {
	h := sha256.New()
	for _, a := range accounts {
		fmt.Fprintf(h, "%s\x00%s\x00%d\x00%d\x00%s\x00%s\x00", a.Username, a.FullName, a.Followers, a.Following, a.Country, a.ExternalURL)
		for _, p := range a.Posts {
			fmt.Fprintf(h, "%s\x00%s\x00%s\x00%d\x00%d\x00%d\x00%s\x00",
				p.Caption, strings.Join(p.Hashtags, "\x01"), p.UploadDate, p.Likes, p.Comments, p.VideoViews, p.URL)
		}
		h.Write([]byte{0x02})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Cache memoizes computed results against one snapshot generation.
type Cache struct {
	mu    sync.Mutex
	store *gocache.Cache
	hash  string
}

// NewCache returns an empty memo cache.
func NewCache() *Cache {
	return &Cache{store: gocache.New(gocache.NoExpiration, 0)}
}

// Rekey points the cache at a new snapshot hash, flushing every entry
// when the hash differs from the current one.
func (c *Cache) Rekey(snapshotHash string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hash != snapshotHash {
		c.store.Flush()
		c.hash = snapshotHash
	}
}

// Key builds a cache key from the operation name and its parameters,
// scoped to the current snapshot hash.
func (c *Cache) Key(op string, params ...string) string {
	c.mu.Lock()
	hash := c.hash
	c.mu.Unlock()
	return hash + "|" + op + "|" + strings.Join(params, "|")
}

// Get returns a memoized value, if present.
func (c *Cache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Set stores a computed value.
func (c *Cache) Set(key string, value interface{}) {
	c.store.Set(key, value, gocache.NoExpiration)
}

// Do returns the memoized value for key, computing and storing it on a
// miss.
func (c *Cache) Do(key string, compute func() interface{}) interface{} {
	if v, ok := c.store.Get(key); ok {
		return v
	}
	v := compute()
	c.store.Set(key, v, gocache.NoExpiration)
	return v
}
