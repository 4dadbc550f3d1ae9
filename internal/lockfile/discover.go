package lockfile

import (
	"io/fs"
	"path/filepath"
)

// Discover walks root and returns the paths of every recognized
// lockfile, skipping the .git control directory. An empty result is
// not an error; it just means there is nothing to match against.
func Discover(root string) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if isLockfile(d.Name()) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func isLockfile(name string) bool {
	for _, base := range Basenames {
		if name == base {
			return true
		}
	}
	return false
}
