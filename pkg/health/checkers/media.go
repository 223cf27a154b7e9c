package checkers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// MediaDirChecker verifies the upload directory exists and is writable by
// round-tripping a probe file.
type MediaDirChecker struct {
	dir string
}

func NewMediaDirChecker(dir string) *MediaDirChecker { return &MediaDirChecker{dir: dir} }

func (c *MediaDirChecker) Name() string { return "media-dir" }

func (c *MediaDirChecker) Check(ctx context.Context) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", c.dir, err)
	}
	probe := filepath.Join(c.dir, ".readycheck")
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return fmt.Errorf("write probe: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("remove probe: %w", err)
	}
	return nil
}
