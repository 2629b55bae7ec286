package status

import (
	"slices"
	"sync"
)

// MetricMap hands out one stable *T per key
// Systems resolve their pointers once at construction, so only registration is locked
type MetricMap[T any] struct {
	mu    sync.Mutex
	byKey sync.Map // string -> *T
	keys  []string // sorted, guarded by mu
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.byKey.Load(key); ok {
		return v.(*T)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	v, loaded := m.byKey.LoadOrStore(key, new(T))
	if !loaded {
		i, _ := slices.BinarySearch(m.keys, key)
		m.keys = slices.Insert(m.keys, i, key)
	}
	return v.(*T)
}

func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.byKey.Load(key)
	return ok
}

// Range visits metrics in key order; metrics registered during the walk are skipped
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.Lock()
	keys := slices.Clone(m.keys)
	m.mu.Unlock()

	for _, k := range keys {
		if v, ok := m.byKey.Load(k); ok {
			fn(k, v.(*T))
		}
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.keys)
}
