// Package photostore persists photos attached to lead submissions. Stored
// names are prefixed with the submission timestamp so every upload is
// unique per submission.
package photostore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apexridge/roofline/internal/core"
)

// timestampFormat matches the prefix used in stored filenames.
const timestampFormat = "20060102150405"

// storedName derives the unique on-disk name from the submission instant
// and the sanitized original filename.
func storedName(now time.Time, originalName string) string {
	return fmt.Sprintf("%s_%s", now.Format(timestampFormat), filepath.Base(originalName))
}

// LocalStore writes photos to a directory on disk.
type LocalStore struct {
	dir string
	now func() time.Time
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir, now: time.Now}
}

func (s *LocalStore) Save(ctx context.Context, originalName, contentType string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create uploads dir: %w", err)
	}

	name := storedName(s.now(), originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}
	return name, nil
}

var _ core.PhotoStore = (*LocalStore)(nil)
