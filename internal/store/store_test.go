// ABOUTME: Tests for the key-value store implementations
// ABOUTME: Exercises Badger and Memory through the shared contract

package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestBadger(t *testing.T) *Badger {
	t.Helper()
	b, err := OpenBadger(filepath.Join(t.TempDir(), "store"))
	if err != nil {
		t.Fatalf("OpenBadger: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestBadger_RoundTrip(t *testing.T) {
	b := openTestBadger(t)

	if err := b.Set("key", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err := b.Get("key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != `{"a":1}` {
		t.Errorf("expected %q, got %q", `{"a":1}`, string(val))
	}
}

func TestBadger_GetMissing(t *testing.T) {
	b := openTestBadger(t)

	_, err := b.Get("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBadger_Delete(t *testing.T) {
	b := openTestBadger(t)

	if err := b.Set("key", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Delete("key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := b.Get("key"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestBadger_DeleteMissing(t *testing.T) {
	b := openTestBadger(t)

	if err := b.Delete("never-existed"); err != nil {
		t.Errorf("deleting an absent key should not error, got %v", err)
	}
}

func TestBadger_Overwrite(t *testing.T) {
	b := openTestBadger(t)

	if err := b.Set("key", []byte("old")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := b.Set("key", []byte("new")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err := b.Get("key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != "new" {
		t.Errorf("expected overwritten value, got %q", string(val))
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()

	if err := m.Set("key", []byte("value")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	val, err := m.Get("key")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(val) != "value" {
		t.Errorf("expected %q, got %q", "value", string(val))
	}

	if _, err := m.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	if err := m.Set("key", []byte("abc")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	val, _ := m.Get("key")
	val[0] = 'x'

	again, _ := m.Get("key")
	if string(again) != "abc" {
		t.Errorf("stored value was mutated through the returned slice")
	}
}

func TestMemory_FailWrites(t *testing.T) {
	m := NewMemory()
	m.FailWrites = errors.New("disk full")

	if err := m.Set("key", []byte("v")); err == nil {
		t.Error("expected Set to fail")
	}
	if err := m.Delete("key"); err == nil {
		t.Error("expected Delete to fail")
	}
}
