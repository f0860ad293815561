package filesystem

import (
	"github.com/desertwitch/pathshim/internal/pathing"
)

// Symlink creates a symbolic link at path pointing at dest. If relative is
// set, the stored target is dest expressed relative to the parent directory
// of path, otherwise it is the absolute dest.
func (f *Handler) Symlink(path pathing.AbsolutePath, dest pathing.AbsolutePath, relative bool) error {
	target := dest.String()
	if relative {
		target = dest.RelativeTo(path.Parent())
	}

	if err := f.unixHandler.Symlink(target, path.String()); err != nil {
		return newSystemError(OpSymlink, err, path.String(), target)
	}

	return nil
}

// Rename atomically renames path to dest, replacing dest if the operating
// system allows it.
func (f *Handler) Rename(path pathing.AbsolutePath, dest pathing.AbsolutePath) error {
	if err := f.unixHandler.Rename(path.String(), dest.String()); err != nil {
		return newSystemError(OpRename, err, path.String(), dest.String())
	}

	return nil
}

// Unlink removes the single filesystem entry at path. Directories are not
// removed.
func (f *Handler) Unlink(path pathing.AbsolutePath) error {
	if err := f.unixHandler.Unlink(path.String()); err != nil {
		return newSystemError(OpUnlink, err, path.String(), "")
	}

	return nil
}
