// Package atomicfile writes files so readers never observe a partial document.
package atomicfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// DirPermissions is used when the parent directory must be created.
	DirPermissions = 0o700

	// FilePermissions is used for files that do not exist yet.
	FilePermissions = 0o600
)

// Options controls a single write.
type Options struct {
	// Backup copies the current file to <path>.backup.<unix> before replacing it.
	Backup bool

	// Perm is the mode for new files. Existing files keep their mode.
	// Zero means FilePermissions.
	Perm os.FileMode
}

// Write replaces path with data through a temp file in the same directory
// followed by a rename. It returns the backup path when one was created.
//
// When path is a symlink the file it points to is replaced instead, so the
// link survives and the temp file and backup live next to the target.
func Write(path string, data []byte, opts Options) (string, error) {
	path, err := resolveLink(path)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermissions); err != nil {
		return "", errors.Wrap(err, "failed to create directory")
	}

	perm := opts.Perm
	if perm == 0 {
		perm = FilePermissions
	}

	existing, statErr := os.Stat(path)
	if statErr == nil {
		perm = existing.Mode().Perm()
	}

	var backupPath string

	if opts.Backup && statErr == nil {
		backupPath = fmt.Sprintf("%s.backup.%d", path, time.Now().Unix())
		if err := copyFile(path, backupPath, perm); err != nil {
			return "", errors.Wrap(err, "failed to create backup")
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}

	tmpPath := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()

		return "", errors.Wrap(err, "failed to write temp file")
	}

	if err := tmp.Sync(); err != nil {
		cleanup()

		return "", errors.Wrap(err, "failed to sync temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		cleanup()

		return "", errors.Wrap(err, "failed to set temp file permissions")
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)

		return "", errors.Wrap(err, "failed to close temp file")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)

		return "", errors.Wrap(err, "failed to rename temp file")
	}

	return backupPath, nil
}

// resolveLink returns the file path points to when path is a symlink, and
// path itself otherwise. A dangling link resolves to its missing target.
func resolveLink(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		return path, nil
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return "", errors.Wrapf(err, "failed to resolve symlink %s", path)
	}

	target, err := os.Readlink(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read symlink %s", path)
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	return target, nil
}

func copyFile(src, dst string, perm os.FileMode) error {
	data, err := os.ReadFile(src) //nolint:gosec // src is controlled by caller
	if err != nil {
		return errors.Wrap(err, "failed to read source file")
	}

	if err := os.WriteFile(dst, data, perm); err != nil {
		return errors.Wrap(err, "failed to write destination file")
	}

	return nil
}
