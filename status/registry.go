package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers at construction; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Int returns the current value of an integer metric, zero if never registered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Snapshot renders all metrics as sorted "key=value" pairs
func (r *Registry) Snapshot() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fmt.Fprintf(&b, "%s=%d ", key, v.Load())
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		fmt.Fprintf(&b, "%s=%s ", key, v.Load())
	})
	return strings.TrimSpace(b.String())
}
