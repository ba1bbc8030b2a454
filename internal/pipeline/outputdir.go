package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cardDirFormat names each card batch by wall-clock time so successive
// runs never overwrite each other and source discovery can pick the
// newest batch by mtime.
const cardDirFormat = "20060102-150405"

// MakeCardDir creates and returns the timestamped directory for this run's
// cards under root.
func MakeCardDir(root string, now time.Time) (string, error) {
	dir := filepath.Join(root, now.Format(cardDirFormat))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create card directory: %w", err)
	}
	return dir, nil
}
