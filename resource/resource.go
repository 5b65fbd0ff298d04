package resource

import (
	"io"
	"strings"
)

// Resource is one loadable configuration document.
//
// A Resource knows how to open itself, whether it currently exists, and how
// to derive a sibling resource from a relative location. Key returns a stable
// identity used for deduplication: two resources with equal keys are the same
// document.
type Resource interface {
	// Name is a short description for logs and error messages.
	Name() string
	// URL is the absolute locator of the resource as a string.
	URL() string
	// Key is the deduplication identity. Usually equal to URL.
	Key() string
	// Exists reports whether the resource can currently be opened.
	Exists() bool
	// Open returns the resource contents for reading.
	Open() (io.ReadCloser, error)
	// Relative resolves a location against this resource's own location.
	Relative(location string) (Resource, error)
}

// ApplyRelativePath replaces the last segment of base with the given relative
// location, e.g. ("a/b.cfg", "c.cfg") -> "a/c.cfg". A base without a slash is
// replaced entirely.
func ApplyRelativePath(base, location string) string {
	idx := strings.LastIndex(base, "/")
	if idx < 0 {
		return location
	}

	return base[:idx+1] + strings.TrimPrefix(location, "/")
}
