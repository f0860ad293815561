// Package pathing provides the immutable absolute path value that the
// filesystem layer operates on. Normalization is limited to what
// [filepath.Clean] does; the value is only ever consumed through its string
// form, its parent and its relative form.
package pathing

import (
	"fmt"
	"path/filepath"
)

// AbsolutePath is an absolute, cleaned filesystem location. The zero value is
// the filesystem root. It is meant to be passed by value.
type AbsolutePath struct {
	path string
}

// Root is the [AbsolutePath] of the filesystem root.
var Root = AbsolutePath{path: "/"} //nolint:gochecknoglobals

// New returns an [AbsolutePath] for a given path string, which must be
// absolute. Any "." and ".." elements and duplicate separators are removed.
func New(path string) (AbsolutePath, error) {
	if path == "" {
		return AbsolutePath{}, ErrPathEmpty
	}

	if !filepath.IsAbs(path) {
		return AbsolutePath{}, fmt.Errorf("%w: %s", ErrPathRelative, path)
	}

	return AbsolutePath{path: filepath.Clean(path)}, nil
}

// Must is like [New] but panics on an invalid path. It is meant for constants
// and tests.
func Must(path string) AbsolutePath {
	p, err := New(path)
	if err != nil {
		panic(err)
	}

	return p
}

// Join returns a new [AbsolutePath] with the given elements appended.
func (p AbsolutePath) Join(elem ...string) AbsolutePath {
	return AbsolutePath{path: filepath.Join(append([]string{p.String()}, elem...)...)}
}

// String returns the string form of the [AbsolutePath].
func (p AbsolutePath) String() string {
	if p.path == "" {
		return "/"
	}

	return p.path
}

// Parent returns the parent directory. The parent of the root is the root.
func (p AbsolutePath) Parent() AbsolutePath {
	return AbsolutePath{path: filepath.Dir(p.String())}
}

// Base returns the last element of the [AbsolutePath].
func (p AbsolutePath) Base() string {
	return filepath.Base(p.String())
}

// RelativeTo returns the path expressed relative to base, using ".."
// elements where the two do not share a prefix.
func (p AbsolutePath) RelativeTo(base AbsolutePath) string {
	rel, err := filepath.Rel(base.String(), p.String())
	if err != nil {
		// Both sides are absolute and cleaned, so this cannot happen.
		return p.String()
	}

	return rel
}
