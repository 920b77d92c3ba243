package cache

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/darna-inc/darna/internal/domain/user"
)

const (
	defaultIdentityCacheSize = 1024
	defaultIdentityCacheTTL  = 30 * time.Second
)

// UserLookup is the subset of user.Repository the identity cache reads through.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}

// IdentityCache resolves bearer token identifiers to users, keeping recently
// seen users in process memory for a short time. Unknown identifiers are not
// cached so a freshly registered account resolves immediately.
type IdentityCache struct {
	next  UserLookup
	cache *lru.LRU[string, *user.User]
}

func NewIdentityCache(next UserLookup, size int, ttl time.Duration) *IdentityCache {
	if size <= 0 {
		size = defaultIdentityCacheSize
	}
	if ttl <= 0 {
		ttl = defaultIdentityCacheTTL
	}
	return &IdentityCache{
		next:  next,
		cache: lru.NewLRU[string, *user.User](size, nil, ttl),
	}
}

func (c *IdentityCache) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if u, ok := c.cache.Get(key); ok {
		return u, nil
	}

	u, err := c.next.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return u, err
	}
	c.cache.Add(key, u)
	return u, nil
}

// Forget drops a cached identity, e.g. after the account changed.
func (c *IdentityCache) Forget(email string) {
	c.cache.Remove(strings.ToLower(strings.TrimSpace(email)))
}

func (c *IdentityCache) Len() int {
	return c.cache.Len()
}
