package check

import (
	"container/list"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/lyraproj/typeguard/tg"
)

type cacheEntry struct {
	key   uint64
	tag   string
	inner []tg.Type
}

// typeCache is a bounded memo for shape classification. Entries are keyed
// by a hash of the canonical string form of the type and evicted least
// recently used once the capacity is exceeded. The cache is safe for
// concurrent use.
type typeCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List
	index    map[uint64]*list.Element
}

func newTypeCache(capacity int) *typeCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &typeCache{
		capacity: capacity,
		order:    list.New(),
		index:    make(map[uint64]*list.Element, capacity),
	}
}

// possibleTypes returns the shape tag of the given type together with the
// ordered inner types that it parameterizes
func (c *typeCache) possibleTypes(t tg.Type) (string, []tg.Type) {
	key := xxhash.Sum64String(t.String())
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.index[key]; ok {
		c.order.MoveToFront(el)
		e := el.Value.(*cacheEntry)
		return e.tag, e.inner
	}
	e := &cacheEntry{key: key, tag: t.Name()}
	if pt, ok := t.(tg.ParameterizedType); ok {
		e.inner = pt.Parameters()
	}
	c.index[key] = c.order.PushFront(e)
	for c.order.Len() > c.capacity {
		last := c.order.Back()
		c.order.Remove(last)
		delete(c.index, last.Value.(*cacheEntry).key)
	}
	return e.tag, e.inner
}

func (c *typeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
