// Package media persists uploaded attachments on disk and hands back
// locators the front-end can fetch them by.
package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrStorage wraps any I/O failure while persisting an upload.
var ErrStorage = errors.New("media storage failure")

// URLPrefix is the route the stored files are served under.
const URLPrefix = "/media"

// Store writes uploads under a dedicated directory, one file per call,
// named <uuid>_<sanitized original name>. Distinct generated names mean
// writes need no cross-call locking.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save persists data and returns its locator. The original name only
// contributes a sanitized basename; it can never escape baseDir.
func (s *Store) Save(ctx context.Context, data []byte, originalName string) (string, error) {
	filename := uuid.New().String() + "_" + sanitizeName(originalName)
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: prepare dir: %v", ErrStorage, err)
	}
	dst := filepath.Join(s.baseDir, filename)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("%w: write %s: %v", ErrStorage, filename, err)
	}
	return URLPrefix + "/" + filename, nil
}

// sanitizeName strips any directory structure a client may have smuggled
// into the upload's filename.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20, r == '/', r == ':':
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, ". ")
	if name == "" {
		return "upload"
	}
	return name
}
