// Package filesystem implements the side-effecting primitives over an
// [pathing.AbsolutePath]. Every operation wraps exactly one syscall or one
// bulk library call and does not retry.
//
// Queries (type and existence checks, symlink resolution) never fail: any
// error is collapsed into a negative or unchanged result. Mutating operations
// return a [*SystemError] carrying the error number and the operands.
package filesystem

import (
	"log/slog"
	"os"

	"github.com/desertwitch/pathshim/internal/pathing"
	"golang.org/x/sys/unix"
)

const (
	unixBasePerms = 0o777
)

type osProvider interface {
	Open(name string) (*os.File, error)
	MkdirAll(path string, perm os.FileMode) error
	RemoveAll(path string) error
	Readlink(name string) (string, error)
	EvalSymlinks(path string) (string, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
	Access(path string, mode uint32) error
	Symlink(oldpath, newpath string) error
	Rename(oldpath, newpath string) error
	Unlink(path string) error
}

// Handler is the principal implementation for the filesystem services. It
// holds no state besides its syscall providers and is safe for concurrent use.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// fileType returns the type bits of the entry at path without following a
// symbolic link at its end, or false if it cannot be queried.
func (f *Handler) fileType(path pathing.AbsolutePath) (uint32, bool) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path.String(), &stat); err != nil {
		slog.Debug("Query failed: could not lstat path (reported as absent)",
			"path", path.String(),
			"err", err,
		)

		return 0, false
	}

	return stat.Mode & unix.S_IFMT, true
}

// IsDirectory reports whether path is a directory. A symbolic link pointing
// at a directory is not a directory.
func (f *Handler) IsDirectory(path pathing.AbsolutePath) bool {
	mode, ok := f.fileType(path)

	return ok && mode == unix.S_IFDIR
}

// IsFile reports whether path is a regular file. A symbolic link pointing at
// a regular file is not a regular file.
func (f *Handler) IsFile(path pathing.AbsolutePath) bool {
	mode, ok := f.fileType(path)

	return ok && mode == unix.S_IFREG
}

// IsSymlink reports whether path itself is a symbolic link.
func (f *Handler) IsSymlink(path pathing.AbsolutePath) bool {
	mode, ok := f.fileType(path)

	return ok && mode == unix.S_IFLNK
}

// Exists reports whether path is accessible as per the existence check of
// the operating system. Permissions beyond that are not checked.
func (f *Handler) Exists(path pathing.AbsolutePath) bool {
	return f.unixHandler.Access(path.String(), unix.F_OK) == nil
}

// ResolveSymlinks returns the real path of path with all symbolic links
// resolved. If resolution fails, path is returned unchanged.
func (f *Handler) ResolveSymlinks(path pathing.AbsolutePath) pathing.AbsolutePath {
	resolved, err := f.osHandler.EvalSymlinks(path.String())
	if err != nil {
		slog.Debug("Query failed: could not resolve symlinks (path kept)",
			"path", path.String(),
			"err", err,
		)

		return path
	}

	if resolved == path.String() {
		return path
	}

	resolvedPath, err := pathing.New(resolved)
	if err != nil {
		return path
	}

	return resolvedPath
}
