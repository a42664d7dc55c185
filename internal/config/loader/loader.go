// Package loader reads raw configuration maps for the editor.
//
// Two sources exist: a TOML file and EDIT_* environment variables. Both
// produce nested map[string]any values keyed by section, which the config
// package merges with DeepMerge and decodes into its typed settings.
package loader

import (
	"io/fs"
	"os"
)

// Loader produces a configuration map from one source.
// A source that does not exist yields nil, nil.
type Loader interface {
	Load() (map[string]any, error)
}

// FileSystem is the read-only file access the TOML loader needs.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// FSAdapter exposes an fs.FS (such as testing/fstest.MapFS) as a FileSystem.
type FSAdapter struct {
	FS fs.FS
}

// ReadFile reads the entire file at path from the wrapped fs.FS.
func (a FSAdapter) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(a.FS, path)
}

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}
