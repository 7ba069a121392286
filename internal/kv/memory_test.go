package kv

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	if _, err := s.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := s.Set(ctx, "a", []byte("one")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := s.Get(ctx, "a")
	if err != nil || string(got) != "one" {
		t.Fatalf("get: %q (err=%v)", got, err)
	}

	// Replace-on-write.
	if err := s.Set(ctx, "a", []byte("two")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, _ = s.Get(ctx, "a")
	if string(got) != "two" {
		t.Fatalf("expected replacement, got %q", got)
	}

	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting an absent key is fine.
	if err := s.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	in := []byte("payload")
	if err := s.Set(ctx, "k", in); err != nil {
		t.Fatalf("set: %v", err)
	}
	in[0] = 'X' // caller mutates its slice after the write

	got, _ := s.Get(ctx, "k")
	if string(got) != "payload" {
		t.Fatalf("stored blob was aliased: %q", got)
	}
	got[0] = 'Y' // mutating the read result must not corrupt the store
	again, _ := s.Get(ctx, "k")
	if string(again) != "payload" {
		t.Fatalf("read blob was aliased: %q", again)
	}
}

func TestMemoryStoreKeys(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()
	for _, k := range []string{"app:user", "app:ledger:2", "app:ledger:1", "other"} {
		if err := s.Set(ctx, k, []byte("x")); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	keys, err := s.Keys(ctx, "app:ledger:")
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "app:ledger:1" || keys[1] != "app:ledger:2" {
		t.Fatalf("unexpected keys %v", keys)
	}
}
