// Package filelock guards the data directory against concurrent writers
// and provides atomic whole-file writes for the JSON artifacts.
//
// Every command that rewrites artifacts takes the directory lock first, so
// two overlapping invocations can never leave a half-regenerated artifact
// set behind. Individual files are written with a temp-file-and-rename
// strategy so a reader never observes a partial write.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// lockFileName is the lock file created inside the data directory.
const lockFileName = ".agentpulse.lock"

// DirLock serializes artifact writes to a single data directory across
// processes.
type DirLock struct {
	flock *flock.Flock
	dir   string
}

// LockDir acquires an exclusive lock on the data directory, creating the
// directory if needed. It blocks until the lock is available.
func LockDir(dir string) (*DirLock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	fl := flock.New(filepath.Join(dir, lockFileName))
	if err := fl.Lock(); err != nil {
		return nil, fmt.Errorf("lock data directory %s: %w", dir, err)
	}
	return &DirLock{flock: fl, dir: dir}, nil
}

// TryLockDir attempts to acquire the directory lock without blocking.
// The returned lock is nil when another process holds it.
func TryLockDir(dir string) (*DirLock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	fl := flock.New(filepath.Join(dir, lockFileName))
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock data directory %s: %w", dir, err)
	}
	if !ok {
		return nil, nil
	}
	return &DirLock{flock: fl, dir: dir}, nil
}

// Unlock releases the directory lock.
func (l *DirLock) Unlock() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("unlock data directory %s: %w", l.dir, err)
	}
	return nil
}

// AtomicWrite writes data to path via a temp file in the same directory
// followed by a rename. If anything fails the previous file content, if
// any, is left intact.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}

	// Rename is atomic within a filesystem, and the temp file lives next
	// to the target.
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}
	tmp = nil
	return nil
}
