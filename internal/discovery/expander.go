package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expander turns directory arguments into the source files below them
type Expander struct {
	skipDirs   map[string]bool
	extensions map[string]bool
}

// NewExpander creates a new Expander with the given directories to skip and
// the file extensions to collect
func NewExpander(skipDirs []string, extensions []string) *Expander {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	extMap := make(map[string]bool)
	for _, ext := range extensions {
		extMap[ext] = true
	}
	return &Expander{skipDirs: skipMap, extensions: extMap}
}

// Expand replaces every directory in paths with the matching files under it,
// in lexical order. Files and paths that cannot be stat'ed are kept in place so
// that reading them reports the real error.
func (e *Expander) Expand(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			files = append(files, path)
			continue
		}

		found, err := e.walk(path)
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", path, err)
		}
		files = append(files, found...)
	}

	return files, nil
}

func (e *Expander) walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			if e.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if e.extensions[filepath.Ext(d.Name())] {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
