package utils

import (
	"os"
	"path/filepath"
)

// FindNearestFile walks up from the given path toward the filesystem root
// and returns the full path of the first directory entry matching name, or
// an empty string when no ancestor directory contains it.
func FindNearestFile(startPath, name string) string {
	dir := startPath
	if !filepath.IsAbs(dir) {
		if wd, err := os.Getwd(); err == nil {
			dir = filepath.Join(wd, dir)
		}
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	iterations := 0
	maxIterations := 20 // Prevent infinite loop

	for iterations < maxIterations {
		iterations++

		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
