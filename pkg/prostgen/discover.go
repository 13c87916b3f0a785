package prostgen

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

const DefaultPattern = "**/*.proto"

func ensureIsDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}

// FindProtos returns the files under root matching the glob pattern, sorted so
// that repeated runs process files in the same order.
func FindProtos(root string, pattern string) ([]string, error) {

	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}

	err := ensureIsDir(root)
	if err != nil {
		return nil, &IOError{Op: "read", Path: root, Err: err}
	}

	matches, err := doublestar.Glob(os.DirFS(root), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &IOError{Op: "read", Path: root, Err: err}
	}

	paths := make([]string, len(matches))
	for i, match := range matches {
		paths[i] = filepath.Join(root, filepath.FromSlash(match))
	}
	sort.Strings(paths)

	return paths, nil
}
