// Package cache stores projected JSON-LD between renders. Projection is
// deterministic, so a cached entry is always safe to serve for an
// unchanged page; the TTL only bounds memory, not correctness.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for markup caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// MarkupKey derives the cache key for one projected shape of one page
func MarkupKey(locale, slug, shape string) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", locale, slug, shape)))
	return "disclose:v1:" + hex.EncodeToString(hash[:])
}
