package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestMemoryStoreGetSetRemove(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "weeklyLimit"); ok || err != nil {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, "weeklyLimit", "150"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, ok, _ := s.Get(ctx, "weeklyLimit"); !ok || v != "150" {
		t.Fatalf("unexpected get: %q %v", v, ok)
	}
	if err := s.Remove(ctx, "weeklyLimit"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.Remove(ctx, "weeklyLimit"); err != nil {
		t.Fatalf("removing a missing key should be a no-op: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "weeklyLimit"); ok {
		t.Fatal("key still present after remove")
	}
}

func TestNewFromSnapshot(t *testing.T) {
	dir := t.TempDir()

	// Missing file -> empty store
	s, err := NewFromSnapshot(filepath.Join(dir, "missing.json"))
	if err != nil || len(s.Snapshot()) != 0 {
		t.Fatalf("expected empty store, got %v err=%v", s.Snapshot(), err)
	}

	path := filepath.Join(dir, "seed.json")
	if err := os.WriteFile(path, []byte(`{"weeklyLimit":"200","expenses":"[]"}`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	s, err = NewFromSnapshot(path)
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	if v, ok, _ := s.Get(context.Background(), "weeklyLimit"); !ok || v != "200" {
		t.Fatalf("unexpected seeded value %q", v)
	}

	if err := os.WriteFile(path, []byte(`not json`), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if _, err := NewFromSnapshot(path); err == nil {
		t.Fatal("expected decode error")
	}
}
