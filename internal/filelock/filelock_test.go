package filelock

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLockDir_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")

	lock, err := LockDir(dir)
	if err != nil {
		t.Fatalf("LockDir() error = %v", err)
	}
	defer lock.Unlock()

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("data directory not created: %v", err)
	}
}

func TestTryLockDir_HeldLock(t *testing.T) {
	dir := t.TempDir()

	first, err := LockDir(dir)
	if err != nil {
		t.Fatalf("LockDir() error = %v", err)
	}

	second, err := TryLockDir(dir)
	if err != nil {
		t.Fatalf("TryLockDir() error = %v", err)
	}
	if second != nil {
		second.Unlock()
		t.Fatal("TryLockDir should return nil while the lock is held")
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}

	third, err := TryLockDir(dir)
	if err != nil {
		t.Fatalf("TryLockDir() after unlock error = %v", err)
	}
	if third == nil {
		t.Fatal("TryLockDir should succeed after unlock")
	}
	third.Unlock()
}

func TestAtomicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.json")

	if err := AtomicWrite(path, []byte(`{"ok": true}`)); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != `{"ok": true}` {
		t.Errorf("content = %q", data)
	}
}

func TestAtomicWrite_ReplacesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "artifact.json")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(path, []byte("new")); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".tmp-") {
			t.Errorf("leftover temp file %s", entry.Name())
		}
	}
}

func TestAtomicWrite_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "artifact.json")
	if err := AtomicWrite(path, []byte("x")); err != nil {
		t.Fatalf("AtomicWrite() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}
