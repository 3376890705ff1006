package oracle

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/card"
)

// DefaultCacheSize bounds the memo table of a Cached oracle.
const DefaultCacheSize = 1 << 16

type cacheKey struct {
	hand    card.Collection
	discard card.Collection
}

// Cached memoizes another Oracle. Scores are keyed by the hand as a set, so
// the same cards in a different slot order share one entry.
// It is safe for concurrent use.
type Cached struct {
	next  Oracle
	cache *lru.Cache[cacheKey, int]
}

// NewCached wraps next with an LRU of the given size (DefaultCacheSize when <= 0).
func NewCached(next Oracle, size int) (*Cached, error) {
	if next == nil {
		return nil, fmt.Errorf("nil oracle")
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[cacheKey, int](size)
	if err != nil {
		return nil, fmt.Errorf("create oracle cache: %w", err)
	}
	return &Cached{next: next, cache: c}, nil
}

func (o *Cached) Score(hand card.Hand, discard card.Collection) int {
	key := cacheKey{hand: hand.Collection(), discard: discard}
	if v, ok := o.cache.Get(key); ok {
		return v
	}
	v := o.next.Score(hand, discard)
	o.cache.Add(key, v)
	return v
}

// Len returns the number of memoized scores.
func (o *Cached) Len() int { return o.cache.Len() }

// Purge drops every memoized score.
func (o *Cached) Purge() { o.cache.Purge() }
