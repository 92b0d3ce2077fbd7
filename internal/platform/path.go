package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolvePath returns p as an absolute path with every symlink evaluated.
// The returned error satisfies os.IsNotExist / errors.Is(err, fs.ErrNotExist)
// when p, or a component of it, does not exist.
func ResolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("making %s absolute: %w", p, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return abs, err
	}
	return resolved, nil
}

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved so that a binary linked into ~/bin still finds files
// shipped beside the real executable.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// IsDir reports whether p exists and is a directory.
func IsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

// Exists reports whether p exists (any file type).
func Exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
