package filesystem

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/desertwitch/pathshim/internal/pathing"
	"github.com/zeebo/blake3"
)

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// Digest returns the hex encoded BLAKE3 checksum of the regular file at path.
// A symbolic link is not followed.
func (f *Handler) Digest(ctx context.Context, path pathing.AbsolutePath) (string, error) {
	if !f.IsFile(path) {
		return "", fmt.Errorf("(fs-digest) %w: %s", ErrNotRegular, path.String())
	}

	file, err := f.osHandler.Open(path.String())
	if err != nil {
		return "", fmt.Errorf("(fs-digest) failed to open: %w", err)
	}
	defer file.Close()

	hasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: file,
	}

	if _, err := io.Copy(hasher, ctxReader); err != nil {
		if errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("(fs-digest) digest canceled: %w", err)
		}

		return "", fmt.Errorf("(fs-digest) failed to read: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
