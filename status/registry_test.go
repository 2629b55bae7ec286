package status

import (
	"strings"
	"sync"
	"testing"
)

func TestCachedPointerIsStable(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get("meteor.spawned")
	b := r.Ints.Get("meteor.spawned")
	if a != b {
		t.Fatal("Get must return the same pointer for a key")
	}
	a.Add(3)
	if r.Int("meteor.spawned") != 3 {
		t.Errorf("Int = %d, want 3", r.Int("meteor.spawned"))
	}
	if r.Int("never.registered") != 0 {
		t.Error("unregistered key should read zero")
	}
	if r.Ints.Has("never.registered") {
		t.Error("Int must not register keys")
	}
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("engine.ticks").Add(1)
		}()
	}
	wg.Wait()
	if r.Int("engine.ticks") != 8 {
		t.Errorf("ticks = %d, want 8", r.Int("engine.ticks"))
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("b.count").Store(2)
	r.Ints.Get("a.count").Store(1)
	r.Strings.Get("engine.phase").Store("InGame")

	got := r.Snapshot()
	if got != "a.count=1 b.count=2 engine.phase=InGame" {
		t.Errorf("Snapshot = %q", got)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("zero value should be empty")
	}
	s.Store(strings.Repeat("x", MaxStringLen+5))
	if len(s.Load()) != MaxStringLen {
		t.Errorf("len = %d, want %d", len(s.Load()), MaxStringLen)
	}
}
