package flock

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mrz1836/verdict/internal/errors"
)

// Lock is an exclusive lock held on a lock file.
type Lock struct {
	path string
	file *os.File
}

// TryLock creates path and its directory if needed and locks it. It returns
// an error wrapping errors.ErrRunInProgress when the lock is already held.
func TryLock(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create lock directory")
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) //nolint:gosec // path is built from the repository root
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open lock file %s", path)
	}

	if err := Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", errors.ErrRunInProgress, path)
	}

	return &Lock{path: path, file: f}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks and closes the lock file. The file itself is kept.
// Releasing twice is a no-op.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	unlockErr := Unlock(l.file.Fd())
	closeErr := l.file.Close()
	l.file = nil
	return stderrors.Join(unlockErr, closeErr)
}
