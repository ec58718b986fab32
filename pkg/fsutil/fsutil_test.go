// SPDX-License-Identifier: MPL-2.0

package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"pumlgen/pkg/fsutil"
)

func TestCreateParentDirectory(t *testing.T) {
	t.Parallel()

	target := filepath.Join(t.TempDir(), "a", "b", "file.txt")
	if err := fsutil.CreateParentDirectory(target); err != nil {
		t.Fatalf("CreateParentDirectory() error = %v", err)
	}
	info, err := os.Stat(filepath.Dir(target))
	if err != nil || !info.IsDir() {
		t.Fatalf("parent directory not created: %v", err)
	}
	// creating it again is a no-op
	if err := fsutil.CreateParentDirectory(target); err != nil {
		t.Errorf("second CreateParentDirectory() error = %v", err)
	}
}

func TestDeleteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "file.txt")
	if err := fsutil.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile() on missing file error = %v", err)
	}
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fsutil.DeleteFile(path); err != nil {
		t.Fatalf("DeleteFile() error = %v", err)
	}
	if fsutil.FileExists(path) {
		t.Error("file still exists after DeleteFile()")
	}
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")
	if got, err := fsutil.ReadFile(missing); err != nil || got != "" {
		t.Errorf("ReadFile(missing) = (%q, %v), want empty and nil", got, err)
	}
	path := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(path, []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, err := fsutil.ReadFile(path); err != nil || got != "content" {
		t.Errorf("ReadFile() = (%q, %v), want (%q, nil)", got, err, "content")
	}
}

func TestDeleteFileOrDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "tree")
	if err := os.MkdirAll(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := fsutil.DeleteFileOrDirectory(dir); err != nil {
		t.Fatalf("DeleteFileOrDirectory() error = %v", err)
	}
	if fsutil.FileExists(dir) {
		t.Error("directory still exists")
	}
}
