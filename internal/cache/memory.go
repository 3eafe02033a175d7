package cache

import (
	"context"
	"sync"
	"time"

	"demandcast/internal/metrics"
	"demandcast/internal/port"
)

type memoryEntry struct {
	payload []byte
	expires time.Time
}

// Memory is the default in-process ResultsCache. It mirrors the original
// results dictionary the service grew out of, with TTL expiry bolted on.
// Expired entries are dropped lazily on read.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

var _ port.ResultsCache = (*Memory)(nil)

// NewMemory creates an empty in-memory results cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

func (m *Memory) Get(_ context.Context, datasetID string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[datasetID]
	if !ok || (!e.expires.IsZero() && time.Now().After(e.expires)) {
		if ok {
			delete(m.entries, datasetID)
		}
		metrics.CacheHits.WithLabelValues("miss").Inc()
		return nil, false, nil
	}

	metrics.CacheHits.WithLabelValues("hit").Inc()
	payload := make([]byte, len(e.payload))
	copy(payload, e.payload)
	return payload, true, nil
}

func (m *Memory) Set(_ context.Context, datasetID string, payload []byte, ttl time.Duration) error {
	stored := make([]byte, len(payload))
	copy(stored, payload)

	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[datasetID] = memoryEntry{payload: stored, expires: expires}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Invalidate(_ context.Context, datasetID string) error {
	m.mu.Lock()
	delete(m.entries, datasetID)
	m.mu.Unlock()
	return nil
}

// Ping always succeeds; the in-process cache has no backend to lose.
func (m *Memory) Ping(context.Context) error {
	return nil
}
