package progression

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DisruptPoints_Go/internal/domain"
)

const (
	accountCacheSize = 1024
	accountCacheTTL  = 30 * time.Second
)

// accountCache holds short-lived account snapshots for read paths.
// Values are stored by copy so cached entries can never alias an account
// a mutation is in the middle of rewriting. Every write path invalidates
// the player's entry before releasing the lock.
type accountCache struct {
	lru *expirable.LRU[string, domain.Account]
}

func newAccountCache(size int, ttl time.Duration) *accountCache {
	return &accountCache{
		lru: expirable.NewLRU[string, domain.Account](size, nil, ttl),
	}
}

func (c *accountCache) get(guildID, playerID string) (*domain.Account, bool) {
	snapshot, ok := c.lru.Get(accountKey(guildID, playerID))
	if !ok {
		return nil, false
	}
	return &snapshot, true
}

func (c *accountCache) put(account *domain.Account) {
	c.lru.Add(accountKey(account.GuildID, account.PlayerID), *account)
}

func (c *accountCache) invalidate(guildID, playerID string) {
	c.lru.Remove(accountKey(guildID, playerID))
}

// accountKey is both the cache key and the lock-manager key for a player.
func accountKey(guildID, playerID string) string {
	return guildID + ":" + playerID
}
