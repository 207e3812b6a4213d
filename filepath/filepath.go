package file_path

import (
	"path/filepath"
)

// FilePathClean is a combination of filepath.Clean and filepath.ToSlash
//
// Example:
//   C:\H\ -> C:/H
func Clean(p string) string {
	// First do the normal OS-based cleanup
	cleaned := filepath.Clean(p)
	// Then normalize all separators to forward slash
	return filepath.ToSlash(cleaned)
}

// Rel is filepath.Rel followed by the same forward-slash normalization, so
// relative names come out identical on every host.
func Rel(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
