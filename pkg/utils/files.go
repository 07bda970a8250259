package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// sourceExtensions lists the JavaScript and TypeScript extensions eis
// processes.
var sourceExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
}

// IsSourceFile checks if a file is a JavaScript or TypeScript source file
func IsSourceFile(filename string) bool {
	return sourceExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ShouldSkipDir reports whether a directory name is excluded from traversal
func ShouldSkipDir(name string) bool {
	return name == "node_modules" || strings.HasPrefix(name, ".")
}

// FindSourceFiles recursively finds all JavaScript and TypeScript files in
// a directory
func FindSourceFiles(root string) ([]string, error) {
	var sourceFiles []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip dependency and hidden directories (but not the root directory)
		if info.IsDir() && path != root {
			if ShouldSkipDir(filepath.Base(path)) {
				return filepath.SkipDir
			}
			return nil
		}

		if IsSourceFile(filepath.Base(path)) {
			sourceFiles = append(sourceFiles, path)
		}

		return nil
	})

	return sourceFiles, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
