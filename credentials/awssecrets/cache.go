package awssecrets

import (
	"sync"
	"time"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
)

// tokenCache holds the last resolved token until it expires.
// It is safe for concurrent use.
type tokenCache struct {
	token      crowdintypes.Token
	expiration time.Time
	ttl        time.Duration
	now        func() time.Time
	mu         sync.RWMutex
}

func newTokenCache(ttl time.Duration) *tokenCache {
	return &tokenCache{ttl: ttl, now: time.Now}
}

// get returns the cached token if it has not expired.
func (c *tokenCache) get() (crowdintypes.Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.token.IsZero() || c.now().After(c.expiration) {
		return "", false
	}
	return c.token, true
}

// set stores token for the cache TTL.
func (c *tokenCache) set(token crowdintypes.Token) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = token
	c.expiration = c.now().Add(c.ttl)
}

// clear drops the cached token.
func (c *tokenCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiration = time.Time{}
}
