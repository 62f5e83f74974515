package suggesters

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	m "github.com/mouse-blink/luarename/internal/model"
)

// DefaultCacheSize is the number of distinct files whose suggestions are kept.
const DefaultCacheSize = 256

type source interface {
	Name() string
	Suggest(ctx context.Context, source string, candidates []m.IdentifierMeta) ([]m.Suggestion, error)
}

// Cached remembers the answers of another source by file content, so copies of
// the same file cost one request. Failures are not cached.
type Cached struct {
	next  source
	cache *lru.Cache[string, []m.Suggestion]
}

// NewCached wraps next with an LRU cache holding up to size entries.
func NewCached(next source, size int) (*Cached, error) {
	cache, err := lru.New[string, []m.Suggestion](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion cache: %w", err)
	}

	return &Cached{next: next, cache: cache}, nil
}

// Name reports the wrapped source's name.
func (c *Cached) Name() string { return c.next.Name() }

// Suggest answers from the cache or asks the wrapped source.
func (c *Cached) Suggest(ctx context.Context, source string, candidates []m.IdentifierMeta) ([]m.Suggestion, error) {
	key := cacheKey(source, candidates)

	if hit, ok := c.cache.Get(key); ok {
		return append([]m.Suggestion(nil), hit...), nil
	}

	suggestions, err := c.next.Suggest(ctx, source, candidates)
	if err != nil {
		return nil, err
	}

	c.cache.Add(key, append([]m.Suggestion(nil), suggestions...))

	return suggestions, nil
}

func cacheKey(source string, candidates []m.IdentifierMeta) string {
	h := sha256.New()
	_, _ = h.Write([]byte(source))

	for _, c := range candidates {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(c.Name))
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(c.Kind))
	}

	return hex.EncodeToString(h.Sum(nil))
}
