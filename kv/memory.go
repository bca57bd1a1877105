package kv

import (
	"sync"
	"time"
)

// Memory is an in-process KeyValueStore used in tests and local
// development where no Redis is available.
type Memory struct {
	mu    sync.Mutex
	items map[string]memoryItem
}

type memoryItem struct {
	value   string
	expires time.Time
}

var _ KeyValueStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{items: make(map[string]memoryItem)}
}

func (m *Memory) get(key string) (memoryItem, bool) {
	item, ok := m.items[key]
	if !ok {
		return memoryItem{}, false
	}
	if !item.expires.IsZero() && time.Now().After(item.expires) {
		delete(m.items, key)
		return memoryItem{}, false
	}
	return item, true
}

func (m *Memory) Set(key, value string, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items[key] = newMemoryItem(value, exp)
	return nil
}

func (m *Memory) SetNX(key, value string, exp time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.get(key); ok {
		return false, nil
	}

	m.items[key] = newMemoryItem(value, exp)
	return true, nil
}

func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.get(key)
	if !ok {
		return "", ErrNotFound
	}
	return item.value, nil
}

func (m *Memory) Exists(key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.get(key)
	return ok, nil
}

func (m *Memory) Del(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.get(key); !ok {
		return "", ErrNotFound
	}

	delete(m.items, key)
	return key, nil
}

func newMemoryItem(value string, exp time.Duration) memoryItem {
	item := memoryItem{value: value}
	if exp > 0 {
		item.expires = time.Now().Add(exp)
	}
	return item
}
