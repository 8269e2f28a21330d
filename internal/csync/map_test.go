package csync

import (
	"sync"
	"testing"
)

func TestMap_SetIfAbsent(t *testing.T) {
	m := NewMap[string, int]()

	if !m.SetIfAbsent("a", 1) {
		t.Fatal("first insert should succeed")
	}
	if m.SetIfAbsent("a", 2) {
		t.Fatal("second insert with same key should fail")
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Errorf("expected original value 1, got %d", v)
	}

	m.Delete("a")
	if m.Has("a") {
		t.Error("key should be gone after Delete")
	}
	if !m.SetIfAbsent("a", 3) {
		t.Error("insert after delete should succeed")
	}
}

func TestMap_ConcurrentSetIfAbsent(t *testing.T) {
	m := NewMap[string, int]()

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if m.SetIfAbsent("uri", i) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("expected exactly one winner, got %d", wins)
	}
	if m.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", m.Len())
	}
}

func TestMap_SortedKeys(t *testing.T) {
	m := NewMap[string, bool]()
	for _, k := range []string{"c", "a", "b"} {
		m.Set(k, true)
	}

	keys := m.SortedKeys(func(a, b string) bool { return a < b })
	want := []string{"a", "b", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
	if len(m.Values()) != 3 {
		t.Errorf("expected 3 values")
	}
}
