package analytics

import (
	"fmt"
	"time"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/patrickmn/go-cache"
)

// Cache memoizes derived figures per state version and minute. Every write
// bumps the version, so an entry never outlives the state it was computed
// from. A nil Cache computes every call.
type Cache struct {
	cache *cache.Cache
}

// NewCache returns a cache whose entries live for ttl. A ttl of zero or less
// disables caching.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return nil
	}
	return &Cache{cache: cache.New(ttl, 5*ttl)}
}

func key(kind string, version uint64, now time.Time) string {
	return fmt.Sprintf("%s:%d:%d", kind, version, now.Truncate(time.Minute).Unix())
}

func (c *Cache) Dashboard(version uint64, s coaching.State, now time.Time) Dashboard {
	if c == nil {
		return Compute(s, now)
	}

	k := key("dashboard", version, now)
	if cached, found := c.cache.Get(k); found {
		return cached.(Dashboard)
	}

	d := Compute(s, now)
	c.cache.Set(k, d, cache.DefaultExpiration)
	return d
}

func (c *Cache) Projections(version uint64, s coaching.State, now time.Time) Projection {
	if c == nil {
		return Projections(s.Bookings, s.Settings, now)
	}

	k := key("projections", version, now)
	if cached, found := c.cache.Get(k); found {
		return cached.(Projection)
	}

	p := Projections(s.Bookings, s.Settings, now)
	c.cache.Set(k, p, cache.DefaultExpiration)
	return p
}

// Flush drops every entry, for example after an import replaced the state.
func (c *Cache) Flush() {
	if c != nil {
		c.cache.Flush()
	}
}
