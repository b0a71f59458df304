package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.stl")
	if err := os.WriteFile(path, []byte("payload"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	l := NewLoader()
	data, err := l.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestLoad_Cached(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cube.stl")
	if err := os.WriteFile(path, []byte("original"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	l := NewLoader()
	if _, err := l.Load(path); err != nil {
		t.Fatalf("first load failed: %v", err)
	}

	// Delete the backing file; the cached bytes must still be served.
	if err := os.Remove(path); err != nil {
		t.Fatalf("removing fixture: %v", err)
	}

	data, err := l.Load(path)
	if err != nil {
		t.Fatalf("cached load failed: %v", err)
	}
	if string(data) != "original" {
		t.Errorf("unexpected cached content: %q", data)
	}
}

func TestLoad_SearchRoots(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "cube.stl"), []byte("x"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	l := NewLoader("/nonexistent", dir)
	if _, err := l.Load("cube.stl"); err != nil {
		t.Errorf("expected root search to find asset, got %v", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	l := NewLoader(t.TempDir())
	if _, err := l.Load("nope.stl"); err == nil {
		t.Error("expected error for missing asset")
	}
}
