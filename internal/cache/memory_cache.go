package cache

import (
	"container/list"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"
)

type Policy string

const (
	// PolicyFIFO evicts the oldest inserted entry; reads do not refresh it.
	PolicyFIFO Policy = "fifo"
	// PolicyLRU evicts the least recently read or written entry.
	PolicyLRU Policy = "lru"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(s)) {
	case "", PolicyFIFO:
		return PolicyFIFO, nil
	case PolicyLRU:
		return PolicyLRU, nil
	}

	return "", fmt.Errorf("unknown cache policy %q", s)
}

type entry struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// MemoryCache is a bounded in-process cache with per-entry TTL.
type MemoryCache struct {
	mu         sync.Mutex
	capacity   int
	policy     Policy
	defaultTTL time.Duration
	now        func() time.Time

	order *list.List
	items map[string]*list.Element
}

type MemoryOption func(*MemoryCache)

// WithClock replaces time.Now, used by tests to drive expiry.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *MemoryCache) { m.now = now }
}

func WithPolicy(p Policy) MemoryOption {
	return func(m *MemoryCache) { m.policy = p }
}

func NewMemoryCache(capacity int, defaultTTL time.Duration, opts ...MemoryOption) *MemoryCache {
	if capacity < 1 {
		capacity = 1
	}

	m := &MemoryCache{
		capacity:   capacity,
		policy:     PolicyFIFO,
		defaultTTL: defaultTTL,
		now:        time.Now,
		order:      list.New(),
		items:      make(map[string]*list.Element, capacity),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *MemoryCache) Get(ctx context.Context, key string, value any) (bool, error) {
	m.mu.Lock()

	el, ok := m.items[key]
	if !ok {
		m.mu.Unlock()
		return false, nil
	}

	e := el.Value.(*entry)
	if m.now().After(e.expiresAt) {
		m.removeElement(el)
		m.mu.Unlock()
		return false, nil
	}

	if m.policy == PolicyLRU {
		m.order.MoveToBack(el)
	}

	data := e.data
	m.mu.Unlock()

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache data for key %s: %w", key, err)
	}

	return true, nil
}

func (m *MemoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	if ttl <= 0 {
		ttl = m.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	expiresAt := m.now().Add(ttl)

	if el, ok := m.items[key]; ok {
		e := el.Value.(*entry)
		e.data = data
		e.expiresAt = expiresAt
		// overwriting counts as a fresh insertion under both policies
		m.order.MoveToBack(el)
		return nil
	}

	for m.order.Len() >= m.capacity {
		m.removeElement(m.order.Front())
	}

	m.items[key] = m.order.PushBack(&entry{key: key, data: data, expiresAt: expiresAt})

	return nil
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if el, ok := m.items[key]; ok {
		m.removeElement(el)
	}

	return nil
}

func (m *MemoryCache) DeletePrefix(ctx context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key, el := range m.items {
		if strings.HasPrefix(key, prefix) {
			m.removeElement(el)
		}
	}

	return nil
}

// Len counts stored entries, expired ones included until they are touched.
func (m *MemoryCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.order.Len()
}

func (m *MemoryCache) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.order.Init()
	clear(m.items)

	return nil
}

func (m *MemoryCache) removeElement(el *list.Element) {
	m.order.Remove(el)
	delete(m.items, el.Value.(*entry).key)
}
