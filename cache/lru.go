// Package cache provides a small thread-safe LRU keyed by comparable values.
package cache

import (
	"container/list"
	"sync"
)

// LRU implements a thread-safe least-recently-used map
type LRU[K comparable, V any] struct {
	size      int
	evictList *list.List
	items     map[K]*list.Element
	onEvict   func(K, V)
	mu        sync.Mutex
}

// entry is stored in the cache
type entry[K comparable, V any] struct {
	key   K
	value V
}

// Option configures an LRU
type Option[K comparable, V any] func(*LRU[K, V])

// WithEvictCallback registers fn to run for every entry pushed out by Put or
// Clear. fn runs after the lock is released.
func WithEvictCallback[K comparable, V any](fn func(K, V)) Option[K, V] {
	return func(c *LRU[K, V]) {
		c.onEvict = fn
	}
}

// New creates a new LRU holding at most size entries; size below 1 is treated as 1
func New[K comparable, V any](size int, opts ...Option[K, V]) *LRU[K, V] {
	if size < 1 {
		size = 1
	}
	c := &LRU[K, V]{
		size:      size,
		evictList: list.New(),
		items:     make(map[K]*list.Element),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get retrieves a value and marks it most recently used
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[key]
	if !exists {
		var zero V
		return zero, false
	}

	c.evictList.MoveToFront(node)
	return node.Value.(*entry[K, V]).value, true
}

// Put adds or updates a value
func (c *LRU[K, V]) Put(key K, value V) {
	evicted := c.put(key, value)
	c.notify(evicted)
}

// GetOrCreate returns the value for key, creating it with create when absent.
// create runs at most once per missing key, under the lock.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) (value V, created bool) {
	c.mu.Lock()
	if node, exists := c.items[key]; exists {
		c.evictList.MoveToFront(node)
		value = node.Value.(*entry[K, V]).value
		c.mu.Unlock()
		return value, false
	}

	value = create()
	evicted := c.insertLocked(key, value)
	c.mu.Unlock()

	c.notify(evicted)
	return value, true
}

func (c *LRU[K, V]) put(key K, value V) []*entry[K, V] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, exists := c.items[key]; exists {
		c.evictList.MoveToFront(node)
		node.Value.(*entry[K, V]).value = value
		return nil
	}

	return c.insertLocked(key, value)
}

// insertLocked adds a new entry and evicts the oldest ones if needed
func (c *LRU[K, V]) insertLocked(key K, value V) []*entry[K, V] {
	node := c.evictList.PushFront(&entry[K, V]{key: key, value: value})
	c.items[key] = node

	var evicted []*entry[K, V]
	for c.evictList.Len() > c.size {
		if ent := c.removeOldest(); ent != nil {
			evicted = append(evicted, ent)
		}
	}
	return evicted
}

// removeOldest removes the least recently used item
func (c *LRU[K, V]) removeOldest() *entry[K, V] {
	node := c.evictList.Back()
	if node == nil {
		return nil
	}
	c.evictList.Remove(node)
	kv := node.Value.(*entry[K, V])
	delete(c.items, kv.key)
	return kv
}

// Remove deletes key without running the evict callback
func (c *LRU[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[key]
	if !exists {
		var zero V
		return zero, false
	}
	c.evictList.Remove(node)
	delete(c.items, key)
	return node.Value.(*entry[K, V]).value, true
}

// Clear removes all items from the cache
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	var evicted []*entry[K, V]
	if c.onEvict != nil {
		for node := c.evictList.Back(); node != nil; node = node.Prev() {
			evicted = append(evicted, node.Value.(*entry[K, V]))
		}
	}
	c.items = make(map[K]*list.Element)
	c.evictList.Init()
	c.mu.Unlock()

	c.notify(evicted)
}

// Size returns the number of items in the cache
func (c *LRU[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.evictList.Len()
}

func (c *LRU[K, V]) notify(evicted []*entry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, ent := range evicted {
		c.onEvict(ent.key, ent.value)
	}
}
