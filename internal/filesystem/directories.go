package filesystem

import (
	"github.com/desertwitch/pathshim/internal/pathing"
)

// MakeDirectories creates a directory at path along with any missing
// ancestors. An already existing directory is not an error. Ancestors created
// before a failure are left in place.
func (f *Handler) MakeDirectories(path pathing.AbsolutePath) error {
	if err := f.osHandler.MkdirAll(path.String(), unixBasePerms); err != nil {
		return newSystemError(OpMakeDirectories, err, path.String(), "")
	}

	return nil
}

// RemoveFileTree recursively removes whatever exists at path. A symbolic link
// is removed itself, its target is left untouched. A nonexistent path is not
// an error.
func (f *Handler) RemoveFileTree(path pathing.AbsolutePath) error {
	if err := f.osHandler.RemoveAll(path.String()); err != nil {
		return newSystemError(OpRemoveFileTree, err, path.String(), "")
	}

	return nil
}
