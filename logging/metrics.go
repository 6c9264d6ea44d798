package logging

import "sync"

// Metrics keeps coarse counters surfaced through the diagnostics endpoint.
type Metrics struct {
	mu       sync.RWMutex
	counters map[string]uint64
}

func NewMetrics() *Metrics {
	return &Metrics{counters: make(map[string]uint64)}
}

func (m *Metrics) TelemetryAdd(key string, delta uint64) {
	if m == nil || key == "" {
		return
	}
	m.mu.Lock()
	if m.counters == nil {
		m.counters = make(map[string]uint64)
	}
	m.counters[key] += delta
	m.mu.Unlock()
}

func (m *Metrics) TelemetryStore(key string, value uint64) {
	if m == nil || key == "" {
		return
	}
	m.mu.Lock()
	if m.counters == nil {
		m.counters = make(map[string]uint64)
	}
	m.counters[key] = value
	m.mu.Unlock()
}

// Snapshot copies the current counter set.
func (m *Metrics) Snapshot() map[string]uint64 {
	if m == nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	copied := make(map[string]uint64, len(m.counters))
	for k, v := range m.counters {
		copied[k] = v
	}
	return copied
}
