package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSave_WritesFileAndReturnsLocator(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	locator, err := s.Save(context.Background(), []byte("payload"), "cat.png")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasPrefix(locator, URLPrefix+"/") {
		t.Errorf("Expected locator under %s/, got %q", URLPrefix, locator)
	}
	if !strings.HasSuffix(locator, "_cat.png") {
		t.Errorf("Expected locator to keep the original name, got %q", locator)
	}

	filename := strings.TrimPrefix(locator, URLPrefix+"/")
	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("Stored file not readable: %v", err)
	}
	if string(data) != "payload" {
		t.Errorf("Expected stored bytes 'payload', got %q", data)
	}
}

func TestSave_UniqueNamesPerCall(t *testing.T) {
	s := NewStore(t.TempDir())

	first, err := s.Save(context.Background(), []byte("a"), "same.png")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second, err := s.Save(context.Background(), []byte("b"), "same.png")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if first == second {
		t.Errorf("Two uploads of the same name collided: %q", first)
	}
}

func TestSave_SanitizesTraversal(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	locator, err := s.Save(context.Background(), []byte("x"), "../../etc/passwd")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if strings.Contains(locator, "..") {
		t.Errorf("Traversal survived sanitization: %q", locator)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected exactly one file inside the media dir, got %d", len(entries))
	}
	if !strings.HasSuffix(entries[0].Name(), "_passwd") {
		t.Errorf("Expected basename only, got %q", entries[0].Name())
	}
}

func TestSave_WindowsSeparatorsAndEmptyNames(t *testing.T) {
	s := NewStore(t.TempDir())

	locator, err := s.Save(context.Background(), []byte("x"), `C:\Users\me\doc.pdf`)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(locator, "_doc.pdf") {
		t.Errorf("Expected windows path reduced to basename, got %q", locator)
	}

	locator, err = s.Save(context.Background(), []byte("x"), "..")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !strings.HasSuffix(locator, "_upload") {
		t.Errorf("Expected fallback name 'upload', got %q", locator)
	}
}

func TestSave_StorageError(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the store expects a directory.
	blocked := filepath.Join(dir, "notadir")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	s := NewStore(blocked)

	_, err := s.Save(context.Background(), []byte("x"), "cat.png")
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("Expected ErrStorage, got %v", err)
	}
}
