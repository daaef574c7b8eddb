package cartstore

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Save(ctx, "cart:a", []byte("[]")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := store.Load(ctx, "cart:a")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "[]" {
		t.Fatalf("unexpected data %q", data)
	}

	if err := store.Delete(ctx, "cart:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Load(ctx, "cart:a"); err != ErrNoSnapshot {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	buf := []byte("abc")
	if err := store.Save(ctx, "k", buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	buf[0] = 'z'

	data, err := store.Load(ctx, "k")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "abc" {
		t.Fatalf("stored data must not alias the caller's buffer, got %q", data)
	}
}
