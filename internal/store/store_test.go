package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layouts", "layout.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	data, err := s.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if data != nil {
		t.Errorf("LoadLayout() before save = %q, want nil", data)
	}

	want := []byte(`{"version":1}`)
	if err := s.SaveLayout(want); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}
	got, err := s.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("LoadLayout() = %q, want %q", got, want)
	}
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(filepath.Join(dir, "layout.json"))
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if err := s.SaveLayout([]byte(`{}`)); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != "layout.json" {
			t.Errorf("unexpected file %q left behind", e.Name())
		}
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.db")
	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	defer s.Close()

	data, err := s.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if data != nil {
		t.Errorf("LoadLayout() before save = %q, want nil", data)
	}

	if err := s.SaveLayout([]byte(`first`)); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}
	// Saving again must overwrite, not duplicate.
	if err := s.SaveLayout([]byte(`second`)); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}
	got, err := s.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("LoadLayout() = %q, want %q", got, "second")
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	s := NewMemoryStore()
	src := []byte(`original`)
	if err := s.SaveLayout(src); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}
	src[0] = 'X'

	got, err := s.LoadLayout()
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if string(got) != "original" {
		t.Errorf("LoadLayout() = %q, caller mutation leaked in", got)
	}
	got[0] = 'Y'
	again, _ := s.LoadLayout()
	if string(again) != "original" {
		t.Errorf("LoadLayout() = %q, returned slice aliases the store", again)
	}
}

func TestSQLiteStoreKeyedState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.db")
	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatalf("OpenSQLiteStore() error = %v", err)
	}
	defer s.Close()
	ctx := context.Background()

	got, err := s.ReadState(ctx, "log/filter")
	if err != nil {
		t.Fatalf("ReadState() error = %v", err)
	}
	if got != nil {
		t.Errorf("ReadState() before write = %q, want nil", got)
	}

	if err := s.WriteState(ctx, "log/filter", []byte(`warn`)); err != nil {
		t.Fatalf("WriteState() error = %v", err)
	}
	if err := s.SaveLayout([]byte(`layout`)); err != nil {
		t.Fatalf("SaveLayout() error = %v", err)
	}

	// State keys and the layout row must not collide.
	got, err = s.ReadState(ctx, "log/filter")
	if err != nil {
		t.Fatalf("ReadState() error = %v", err)
	}
	if string(got) != "warn" {
		t.Errorf("ReadState() = %q, want %q", got, "warn")
	}
	layout, _ := s.LoadLayout()
	if string(layout) != "layout" {
		t.Errorf("LoadLayout() = %q, want %q", layout, "layout")
	}
}

func TestMemoryStoreKeyedState(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.WriteState(ctx, "k", []byte(`v`)); err != nil {
		t.Fatalf("WriteState() error = %v", err)
	}
	got, err := s.ReadState(ctx, "k")
	if err != nil {
		t.Fatalf("ReadState() error = %v", err)
	}
	if string(got) != "v" {
		t.Errorf("ReadState() = %q, want %q", got, "v")
	}
}
