package curve

import (
	"fmt"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache memoizes SampleFrontier on its full input tuple. It is safe for
// concurrent use. Returned curves are copies and may be modified freely.
type Cache struct {
	store *cache.Cache
}

// NewCache creates a cache whose entries expire after ttl. A non-positive
// ttl keeps entries until the process exits.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{store: cache.New(cache.NoExpiration, 0)}
	}

	return &Cache{store: cache.New(ttl, 2*ttl)}
}

// SampleFrontier returns the cached frontier for (p, numPoints), sampling and
// storing it on a miss. Errors are not cached.
func (c *Cache) SampleFrontier(p Params, numPoints int) (Curve, error) {
	key := frontierKey(p, numPoints)
	if v, ok := c.store.Get(key); ok {
		//nolint: forcetypeassert
		return slices.Clone(v.(Curve)), nil
	}

	out, err := SampleFrontier(p, numPoints)
	if err != nil {
		return nil, err
	}
	c.store.SetDefault(key, out)

	return slices.Clone(out), nil
}

// Len returns the number of cached curves, including expired entries not yet
// evicted.
func (c *Cache) Len() int {
	return c.store.ItemCount()
}

func frontierKey(p Params, numPoints int) string {
	return fmt.Sprintf("%x|%x|%x|%d", p.Resource, p.EfficiencyX, p.EfficiencyY, numPoints)
}
