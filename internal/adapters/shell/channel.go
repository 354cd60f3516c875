package shell

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
)

// LocalChannel implements ports.ExecutionChannel for the local machine.
type LocalChannel struct{}

// NewLocalChannel creates a new LocalChannel.
func NewLocalChannel() *LocalChannel {
	return &LocalChannel{}
}

// FileExists reports whether path names an existing regular file.
func (c *LocalChannel) FileExists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
	}
	return !info.IsDir(), nil
}
