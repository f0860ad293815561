package pathing

import "errors"

var (
	// ErrPathEmpty occurs when an [AbsolutePath] is constructed from an empty
	// string.
	ErrPathEmpty = errors.New("path is empty")

	// ErrPathRelative occurs when an [AbsolutePath] is constructed from a
	// path that is not anchored at the filesystem root.
	ErrPathRelative = errors.New("path is relative")
)
