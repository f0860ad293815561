package filesystem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrNotRegular is an error that occurs when an operation that requires a
// regular file is given anything else.
var ErrNotRegular = errors.New("not a regular file")

// Operation is the kind of filesystem primitive that a [SystemError]
// originates from.
type Operation int

const (
	// OpSymlink is the creation of a symbolic link.
	OpSymlink Operation = iota

	// OpRename is the atomic rename of a filesystem entry.
	OpRename

	// OpUnlink is the removal of a single filesystem entry.
	OpUnlink

	// OpMakeDirectories is the creation of a directory and its ancestors.
	OpMakeDirectories

	// OpRemoveFileTree is the recursive removal of a filesystem entry.
	OpRemoveFileTree
)

func (o Operation) String() string {
	switch o {
	case OpSymlink:
		return "symlink"
	case OpRename:
		return "rename"
	case OpUnlink:
		return "unlink"
	case OpMakeDirectories:
		return "mkdirs"
	case OpRemoveFileTree:
		return "rmtree"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// SystemError is a failed filesystem primitive. It carries the operating
// system error number as it was returned by the failing call, together with
// the string forms of the operands, so that it can be printed without any
// further lookups.
//
// Path is the link path for [OpSymlink], the old path for [OpRename] and the
// only operand otherwise. Dest is the stored link target for [OpSymlink] and
// the new path for [OpRename].
type SystemError struct {
	Op    Operation
	Errno unix.Errno
	Path  string
	Dest  string
	Err   error
}

// newSystemError captures the error number from err, which must be the error
// returned by the failing call itself.
func newSystemError(op Operation, err error, path, dest string) *SystemError {
	var errno unix.Errno
	errors.As(err, &errno)

	return &SystemError{
		Op:    op,
		Errno: errno,
		Path:  path,
		Dest:  dest,
		Err:   err,
	}
}

func (e *SystemError) Error() string {
	reason := e.reason()

	switch e.Op {
	case OpSymlink:
		return fmt.Sprintf("symlink %s -> %s: %s", e.Path, e.Dest, reason)
	case OpRename:
		return fmt.Sprintf("rename %s to %s: %s", e.Path, e.Dest, reason)
	case OpUnlink:
		return fmt.Sprintf("unlink %s: %s", e.Path, reason)
	case OpMakeDirectories:
		return fmt.Sprintf("make directories %s: %s", e.Path, reason)
	case OpRemoveFileTree:
		return fmt.Sprintf("remove file tree %s: %s", e.Path, reason)
	default:
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, reason)
	}
}

func (e *SystemError) reason() string {
	if e.Errno != 0 {
		return e.Errno.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}

	return "unknown error"
}

// Unwrap returns the error as returned by the failing call, so that
// [errors.Is] works against the [unix.Errno] values.
func (e *SystemError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	if e.Errno != 0 {
		return e.Errno
	}

	return nil
}
