package render

import (
	"io/fs"
	"path/filepath"
	"time"
)

// DiscoverLatest walks root recursively and returns the most recently
// modified file whose base name equals name. It is the secondary source
// resolution step used when the configured card path does not exist:
// card renders land in timestamped output directories, so the newest
// match is the card the user most likely just produced.
//
// Returns "" when no match exists; the caller turns that into
// [ErrSourceAssetNotFound].
func DiscoverLatest(root, name string) (string, error) {
	var (
		newest     string
		newestTime time.Time
	)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal: discovery is
			// best-effort by contract.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || d.Name() != name {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if newest == "" || info.ModTime().After(newestTime) {
			newest = path
			newestTime = info.ModTime()
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return newest, nil
}
