package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// item holds a cached value with its expiration time and key.
type item[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
	key       string
}

func (it *item[V]) expired() bool {
	if it.expiresAt.IsZero() {
		return false
	}
	return time.Now().After(it.expiresAt)
}

// Memory is an in-memory cache with TTL-based expiration and optional
// LRU eviction when a maximum entry count is configured. It is the
// right backend for a single app process, which is how this app
// usually deploys.
//
// A hash map gives O(1) lookups; a doubly-linked list keeps LRU order
// with the most recently accessed entries at the front.
type Memory[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	opts     *memoryOptions
	onEvict  func(key string, value V)
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
}

// NewMemory creates an in-memory cache.
//
// Example:
//
//	journals := cache.NewMemory[[]journal.Journal](
//	    cache.WithDefaultTTL(5*time.Minute),
//	    cache.WithMaxEntries(10000),
//	)
//	defer journals.Close()
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
		done:     make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// SetEvictCallback registers a callback invoked whenever an item leaves
// the cache: LRU eviction, expiration cleanup, manual deletion, and
// clearing all count.
func (m *Memory[V]) SetEvictCallback(fn func(key string, value V)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onEvict = fn
}

// Get retrieves a value by key and marks it recently used.
// Returns ErrNotFound if the key does not exist or has expired.
func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	it := elem.Value.(*item[V])

	if it.expired() {
		m.removeElement(elem)
		var zero V
		return zero, ErrNotFound
	}

	m.eviction.MoveToFront(elem)

	return it.value, nil
}

// Set stores a value. Zero TTL uses the configured default; negative
// TTL stores without expiration.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	if elem, ok := m.items[key]; ok {
		it := elem.Value.(*item[V])
		it.value = value
		it.expiresAt = expiresAt
		m.eviction.MoveToFront(elem)
		return nil
	}

	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		m.evictOldest()
	}

	it := &item[V]{key: key, value: value, expiresAt: expiresAt}
	elem := m.eviction.PushFront(it)
	m.items[key] = elem

	return nil
}

// Delete removes a key from the cache.
func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if elem, ok := m.items[key]; ok {
		m.removeElement(elem)
	}

	return nil
}

// Has checks whether a key exists and has not expired, without touching
// its LRU position.
func (m *Memory[V]) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return false, nil
	}

	it := elem.Value.(*item[V])
	if it.expired() {
		m.removeElement(elem)
		return false, nil
	}

	return true, nil
}

// Clear removes all entries from the cache.
func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if m.onEvict != nil {
		for _, elem := range m.items {
			it := elem.Value.(*item[V])
			m.onEvict(it.key, it.value)
		}
	}

	m.items = make(map[string]*list.Element)
	m.eviction.Init()

	return nil
}

// Close stops the background janitor and marks the cache closed.
// Close is idempotent.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)

	return nil
}

func (m *Memory[V]) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

// deleteExpired sweeps from the back, where the oldest entries live.
func (m *Memory[V]) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for elem := m.eviction.Back(); elem != nil; {
		it := elem.Value.(*item[V])
		prev := elem.Prev()
		if !it.expiresAt.IsZero() && now.After(it.expiresAt) {
			m.removeElement(elem)
		}
		elem = prev
	}
}

// evictOldest removes the least recently used entry.
// Caller must hold the mutex.
func (m *Memory[V]) evictOldest() {
	elem := m.eviction.Back()
	if elem != nil {
		m.removeElement(elem)
	}
}

// removeElement removes an element and fires the eviction callback.
// Caller must hold the mutex.
func (m *Memory[V]) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	it := elem.Value.(*item[V])
	delete(m.items, it.key)

	if m.onEvict != nil {
		m.onEvict(it.key, it.value)
	}
}

var _ Cache[any] = (*Memory[any])(nil)
