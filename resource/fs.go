package resource

import (
	"fmt"
	"io"
	"io/fs"
	"path"
)

// FSResource is a Resource backed by an fs.FS, useful for embedded documents
// and for tests built on fstest.MapFS.
type FSResource struct {
	fsys fs.FS
	path string
}

// NewFS creates a resource for a path inside the given file system. The path
// follows fs.FS conventions (slash-separated, no leading slash).
func NewFS(fsys fs.FS, p string) *FSResource {
	return &FSResource{fsys: fsys, path: path.Clean(p)}
}

// Name returns the in-FS path.
func (r *FSResource) Name() string {
	return r.path
}

// URL returns an fs scheme locator for the path.
func (r *FSResource) URL() string {
	return "fs:" + r.path
}

// Key returns the URL. Two FSResources over different file systems but equal
// paths collide; one loader is expected to serve one file system.
func (r *FSResource) Key() string {
	return r.URL()
}

// Exists reports whether the path can be stat'ed inside the file system.
func (r *FSResource) Exists() bool {
	info, err := fs.Stat(r.fsys, r.path)

	return err == nil && !info.IsDir()
}

// Open opens the path for reading.
func (r *FSResource) Open() (io.ReadCloser, error) {
	file, err := r.fsys.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", r.path, err)
	}

	return file, nil
}

// Relative resolves a location against the directory containing this path.
func (r *FSResource) Relative(location string) (Resource, error) {
	return NewFS(r.fsys, path.Join(path.Dir(r.path), location)), nil
}
