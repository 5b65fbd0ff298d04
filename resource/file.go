package resource

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileResource is a Resource backed by the operating system file system.
type FileResource struct {
	path string
}

// NewFile creates a file-backed resource for the given path. The path is
// cleaned and made absolute so that Key is stable regardless of how the
// caller spelled the location.
func NewFile(path string) *FileResource {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		abs = filepath.Clean(path)
	}

	return &FileResource{path: abs}
}

// Name returns the file path.
func (r *FileResource) Name() string {
	return r.path
}

// URL returns the file URL form of the path.
func (r *FileResource) URL() string {
	return "file://" + filepath.ToSlash(r.path)
}

// Key returns the URL, which is unique per file.
func (r *FileResource) Key() string {
	return r.URL()
}

// Exists reports whether the file exists and is not a directory.
func (r *FileResource) Exists() bool {
	stat, err := os.Stat(r.path)

	return err == nil && !stat.IsDir()
}

// Open opens the file for reading.
func (r *FileResource) Open() (io.ReadCloser, error) {
	file, err := os.Open(r.path) // #nosec G304 -- path is cleaned at construction
	if err != nil {
		return nil, fmt.Errorf("opening file %q: %w", r.path, err)
	}

	return file, nil
}

// Relative resolves a location against the directory containing this file.
func (r *FileResource) Relative(location string) (Resource, error) {
	return NewFile(filepath.Join(filepath.Dir(r.path), filepath.FromSlash(location))), nil
}
