// SPDX-License-Identifier: MPL-2.0

// Package fsutil centralizes the small filesystem operations shared by the
// generation tasks: idempotent create/delete helpers and tolerant reads.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateDirectory creates the directory and any missing parents. An existing
// directory is not an error.
func CreateDirectory(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	return nil
}

// CreateParentDirectory creates the parent directory of the given file path.
func CreateParentDirectory(path string) error {
	return CreateDirectory(filepath.Dir(path))
}

// DeleteFile removes the file. A missing file is not an error.
func DeleteFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("unable to delete %s: %w", path, err)
	}
	return nil
}

// DeleteFileOrDirectory removes the path recursively. A missing path is not
// an error.
func DeleteFileOrDirectory(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("unable to delete %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether the path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile returns the file content, or an empty string when the file does
// not exist.
func ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("unable to read %s: %w", path, err)
	}
	return string(content), nil
}
