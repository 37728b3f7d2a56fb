package balance

import (
	"github.com/patrickmn/go-cache"
)

// Cached memoizes balances per identity. The owner must call Invalidate after
// every mutation of the chain or the pool.
type Cached struct {
	ledger *Ledger
	store  *cache.Cache
}

func WithCacheStore(store *cache.Cache) func(*Cached) {
	return func(c *Cached) {
		c.store = store
	}
}

func NewCached(l *Ledger, opts ...func(*Cached)) *Cached {
	c := &Cached{
		ledger: l,
		store:  cache.New(cache.NoExpiration, 0),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Cached) Balance(identity string) float64 {
	if value, found := c.store.Get(identity); found {
		if b, ok := value.(float64); ok {
			return b
		}
	}

	b := c.ledger.Balance(identity)
	c.store.Set(identity, b, cache.DefaultExpiration)

	return b
}

func (c *Cached) Invalidate() {
	c.store.Flush()
}
