// =============================================================================
// matic_sku Converter - File Manager Utility
// =============================================================================
//
// This module provides the file plumbing around the conversion:
//   - Base directory resolution (the project root next to scripts/)
//   - Whole-file writes that never leave a half-written output behind
//   - File checks for optional inputs and the output size in the report
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// ScriptsDirName is the directory the converter historically lived in. When
// the tool runs from inside it, the project root is one level up.
const ScriptsDirName = "scripts"

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// ResolveBaseDir returns the directory that holds procvlojas.md.
//
// PARAMETERS:
//   - workDir: the current working directory.
//
// RETURNS:
//   - workDir, or its parent when workDir is the scripts directory.
func ResolveBaseDir(workDir string) string {
	clean := filepath.Clean(workDir)
	if filepath.Base(clean) == ScriptsDirName {
		return filepath.Dir(clean)
	}
	return clean
}

// EnsureParentDir creates the directory that will contain path.
func EnsureParentDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// =============================================================================
// FILE WRITING
// =============================================================================

// WriteFileAtomic writes data to path in one operation.
//
// The data goes to a temporary file in the same directory, which is then
// renamed over path. A failed write leaves any previous file untouched.
func WriteFileAtomic(path string, data []byte) error {
	if err := EnsureParentDir(path); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Only reached on failure; after a successful rename tmpName is gone.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists reports whether path names a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// GetFileSize returns the size of a file in bytes.
func GetFileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.Size(), nil
}

// DescribeSize returns the size of path for display, e.g. "1.2 kB".
// It returns "" when the file cannot be inspected.
func DescribeSize(path string) string {
	size, err := GetFileSize(path)
	if err != nil {
		return ""
	}
	return humanize.Bytes(uint64(size))
}
