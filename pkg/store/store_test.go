package store

import (
	"context"
	"testing"
)

// backendTest exercises the Store contract shared by all implementations.
func backendTest(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	// Missing key is a miss, not an error.
	data, ok, err := s.Get(ctx, "layout")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if ok || data != nil {
		t.Error("missing key should report absent with nil data")
	}

	// Round-trip.
	doc := []byte(`{"version":2,"tiles":[]}`)
	if err := s.Set(ctx, "layout", doc); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, ok, err = s.Get(ctx, "layout")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !ok {
		t.Fatal("key should exist after Set")
	}
	if string(data) != string(doc) {
		t.Errorf("Get = %s, want %s", data, doc)
	}

	// Overwrite replaces.
	if err := s.Set(ctx, "layout", []byte("{}")); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, _, _ = s.Get(ctx, "layout")
	if string(data) != "{}" {
		t.Errorf("Get after overwrite = %s, want {}", data)
	}

	// Delete, then deleting a missing key is fine.
	if err := s.Delete(ctx, "layout"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "layout"); ok {
		t.Error("key should be gone after Delete")
	}
	if err := s.Delete(ctx, "layout"); err != nil {
		t.Errorf("Delete of missing key should not error: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	backendTest(t, s)
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	defer s.Close()
	backendTest(t, s)
}

func TestLocation(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	defer f.Close()
	if f.Location() != dir {
		t.Errorf("FileStore.Location() = %s, want %s", f.Location(), dir)
	}

	m := NewMemoryStore()
	defer m.Close()
	if m.Location() != "memory" {
		t.Errorf("MemoryStore.Location() = %s, want memory", m.Location())
	}
}

func TestFileStoreKeySanitization(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore error: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "../escape", []byte("x")); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// The document must land inside the store directory.
	data, ok, err := s.Get(ctx, "../escape")
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if string(data) != "x" {
		t.Errorf("Get = %s, want x", data)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	ctx := context.Background()

	doc := []byte("abc")
	if err := s.Set(ctx, "k", doc); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	// Mutating the caller's slice must not affect stored data.
	doc[0] = 'z'
	data, _, _ := s.Get(ctx, "k")
	if string(data) != "abc" {
		t.Errorf("stored data mutated through caller slice: %s", data)
	}

	// Mutating the returned slice must not affect stored data.
	data[0] = 'z'
	again, _, _ := s.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored data mutated through returned slice: %s", again)
	}
}
