package status

import "sync/atomic"

// MaxStringLen bounds label metrics such as the phase name
const MaxStringLen = 24

// AtomicString is a lock-free string label, zero value reads as ""
type AtomicString struct {
	v atomic.Value // string
}

// Store publishes val, cut to MaxStringLen bytes
func (s *AtomicString) Store(val string) {
	s.v.Store(val[:min(len(val), MaxStringLen)])
}

func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}
