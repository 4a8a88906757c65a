package cache

import (
	"sync"
	"time"

	"github.com/kabirsrana193-dot/Finance/internal/pipeline"
)

type memoryEntry struct {
	result    *pipeline.Result
	expiresAt time.Time
}

// MemoryStore 是进程内的 TTL 缓存, 过期条目在读取时惰性清除。
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry

	// now 可注入, 测试里用假时钟控制过期。
	now func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStore) Get(key string) (*pipeline.Result, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}

	// 恰好等于过期时刻仍算命中, 只有严格超过才失效。
	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		if cur, ok := m.entries[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return e.result, true
}

func (m *MemoryStore) Put(key string, result *pipeline.Result, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{
		result:    result,
		expiresAt: m.now().Add(ttl),
	}
}

func (m *MemoryStore) Invalidate(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]memoryEntry)
}
