package embedgen

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	file_path "github.com/orus-lang/orus/filepath"
)

// Scan walks root and collects every file whose name ends with ext, in the
// order the walk yields them (lexical, so repeated scans of an unchanged tree
// produce identical output). Each module's name is its path relative to root,
// prefixed with namespace and normalized to forward slashes.
func Scan(root, ext, namespace string) ([]Module, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}
	if !info.IsDir() {
		return nil, &ScanError{Root: root, Err: errors.New("not a directory")}
	}

	var modules []Module
	walkErr := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// An entry that vanished mid-walk is simply absent.
			if errors.Is(err, fs.ErrNotExist) && p != root {
				return nil
			}
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		data, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		rel, err := file_path.Rel(root, p)
		if err != nil {
			return err
		}
		modules = append(modules, Module{
			Name:   file_path.Clean(path.Join(namespace, rel)),
			Source: string(data),
		})
		return nil
	})
	if walkErr != nil {
		return nil, &ScanError{Root: root, Err: walkErr}
	}
	return modules, nil
}
