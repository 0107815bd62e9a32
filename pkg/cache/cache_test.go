package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// --- helpers ---

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestPutGetRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("weather", []byte(`{"city":"Oslo"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, written, ok := s.Get("weather", 0)
	if !ok {
		t.Fatal("Get missed a freshly written entry")
	}
	if string(data) != `{"city":"Oslo"}` {
		t.Errorf("Get = %q", data)
	}
	if written.IsZero() {
		t.Error("Get returned a zero write time")
	}
}

func TestGetMissingKey(t *testing.T) {
	s := newTestStore(t)

	if _, _, ok := s.Get("absent", 0); ok {
		t.Error("Get reported a hit for an absent key")
	}
}

func TestGetExpiredEntry(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("weather", []byte("stale")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	// Backdate the file past the TTL.
	path := filepath.Join(s.dir, "weather.json")
	old := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	if _, _, ok := s.Get("weather", time.Hour); ok {
		t.Error("Get reported a hit for an expired entry")
	}
	if _, _, ok := s.Get("weather", 0); !ok {
		t.Error("ttl 0 should never expire")
	}
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)

	s.Put("k", []byte("one"))
	s.Put("k", []byte("two"))

	data, _, ok := s.Get("k", 0)
	if !ok || string(data) != "two" {
		t.Errorf("Get = %q, %v, want %q", data, ok, "two")
	}
}

func TestInvalidKeysRejected(t *testing.T) {
	s := newTestStore(t)

	for _, key := range []string{"", "a/b", `a\b`, "../escape"} {
		if err := s.Put(key, []byte("x")); err == nil {
			t.Errorf("Put(%q) accepted an invalid key", key)
		}
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	s.Put("k", []byte("x"))
	if err := s.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, _, ok := s.Get("k", 0); ok {
		t.Error("entry survived Delete")
	}
	if err := s.Delete("k"); err != nil {
		t.Errorf("Delete of a missing entry = %v, want nil", err)
	}
}

type testSnap struct {
	City string `json:"city"`
	Temp float64 `json:"temp"`
}

func TestTypedRoundTrip(t *testing.T) {
	s := newTestStore(t)

	in := testSnap{City: "Bergen", Temp: 8.5}
	if err := PutTyped(s, "snap", in); err != nil {
		t.Fatalf("PutTyped: %v", err)
	}

	out, _, ok := GetTyped[testSnap](s, "snap", time.Hour)
	if !ok {
		t.Fatal("GetTyped missed")
	}
	if out != in {
		t.Errorf("GetTyped = %+v, want %+v", out, in)
	}
}

func TestTypedMalformedEntryIsMiss(t *testing.T) {
	s := newTestStore(t)

	s.Put("snap", []byte("not json"))
	if _, _, ok := GetTyped[testSnap](s, "snap", 0); ok {
		t.Error("GetTyped reported a hit for malformed JSON")
	}
}
