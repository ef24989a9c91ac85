package cache

import (
	"testing"
	"time"
)

func TestKey_DeterministicAndDistinct(t *testing.T) {
	a := Key([]byte(`{"house_value":300000}`))
	b := Key([]byte(`{"house_value":300000}`))
	c := Key([]byte(`{"house_value":300001}`))

	if a != b {
		t.Error("identical payloads must produce identical keys")
	}
	if a == c {
		t.Error("different payloads must produce different keys")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(time.Minute)

	if _, ok := m.Get("missing"); ok {
		t.Error("expected miss for unknown key")
	}
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := m.Get("k")
	if !ok || got != "v" {
		t.Errorf("expected hit with %q, got %q (ok=%v)", "v", got, ok)
	}
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory(10 * time.Millisecond)
	if err := m.Set("k", "v"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := m.Get("k"); ok {
		t.Error("expected miss after TTL")
	}
}
