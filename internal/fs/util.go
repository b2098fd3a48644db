package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/akeil/mvp/internal/logging"
)

// WriteFile creates the file at path with the content produced by write.
//
// The content goes to a temporary file in the same directory first, which is
// moved to path once write succeeds. On error, path is left untouched.
func WriteFile(path string, write func(w io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mvp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	err = write(tmp)
	closeErr := tmp.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		removeErr := os.Remove(tmpName)
		if removeErr != nil {
			logging.Warning("Failed to remove temp file %v: %v", tmpName, removeErr)
		}
		return err
	}

	return Move(tmpName, path)
}

// Move moves a file from src to dst.
// It tries os.Rename() first and falls back on "copy and delete".
//
// If src cannot be deleted after a successful copy,
// NO error is returned and src remains as it was.
func Move(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename may have failed when moving across file systems
	// so try again w/ copy & delete.
	logging.Debug("Rename failed for %v -> %v, fall back on copy and delete", src, dst)
	r, err := os.Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, r)
	closeErr := w.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	ignoredErr := os.Remove(src)
	if ignoredErr != nil {
		logging.Error("Failed to remove file %v", src)
	}

	return nil
}
