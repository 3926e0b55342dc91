package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileHelper_DirExists(t *testing.T) {
	h := NewFileHelper()
	dir := t.TempDir()

	exists, err := h.DirExists(dir)
	if err != nil || !exists {
		t.Errorf("Expected existing directory, got %v / %v", exists, err)
	}

	exists, err = h.DirExists(filepath.Join(dir, "missing"))
	if err != nil || exists {
		t.Errorf("Expected missing directory, got %v / %v", exists, err)
	}

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	exists, err = h.DirExists(file)
	if err != nil || exists {
		t.Errorf("Regular file should not count as a directory, got %v / %v", exists, err)
	}
}

func TestFileHelper_FileExists(t *testing.T) {
	h := NewFileHelper()
	dir := t.TempDir()

	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	exists, err := h.FileExists(file)
	if err != nil || !exists {
		t.Errorf("Expected existing file, got %v / %v", exists, err)
	}

	exists, err = h.FileExists(dir)
	if err != nil || exists {
		t.Errorf("Directory should not count as a file, got %v / %v", exists, err)
	}
}
