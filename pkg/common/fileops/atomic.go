package fileops

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWrite writes data to path through a temporary file and a rename, so
// readers see either the old content or the new content, never a partial file.
// Missing parent directories are created.
func AtomicWrite(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer func() {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
	}()

	if err := writeTempFile(data, tmpFile); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	return renameTempFile(tmpFile.Name(), path, mode)
}

// writeTempFile writes data, fsyncs and closes the temporary file.
func writeTempFile(data []byte, tmpFile *os.File) error {
	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// renameTempFile applies mode to the temp file and moves it over the target.
func renameTempFile(tmpPath string, targetPath string, mode os.FileMode) error {
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	if err := os.Rename(tmpPath, targetPath); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
