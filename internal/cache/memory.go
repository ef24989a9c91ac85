package cache

import (
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process TTL cache. It is the default when no Redis address
// is configured.
type Memory struct {
	mu    sync.RWMutex
	store map[string]memoryEntry
	ttl   time.Duration
}

func NewMemory(ttl time.Duration) *Memory {
	m := &Memory{
		store: make(map[string]memoryEntry),
		ttl:   ttl,
	}
	go m.cleanup()
	return m
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.store[key]
	if !ok {
		return "", false
	}
	if time.Now().After(entry.expiresAt) {
		return "", false
	}
	return entry.value, true
}

func (m *Memory) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}

// cleanup periodically removes expired entries.
func (m *Memory) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		now := time.Now()
		for key, entry := range m.store {
			if now.After(entry.expiresAt) {
				delete(m.store, key)
			}
		}
		m.mu.Unlock()
	}
}
