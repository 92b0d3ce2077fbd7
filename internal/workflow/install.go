package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/branding"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/errors"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/platform"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Locate returns the template path to install from. An explicit override wins;
// otherwise the template is expected next to the running executable.
// Returns E_TEMPLATE_MISSING when the file does not exist.
func Locate(override string) (string, error) {
	var path string
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", errors.Wrap(errors.ETemplateMissing, "resolving template path "+override, err)
		}
		path = abs
	} else {
		dir, err := platform.ExecutableDir()
		if err != nil {
			return "", errors.Wrap(errors.ETemplateMissing, "locating workflow template", err)
		}
		path = filepath.Join(dir, branding.TemplateFile())
	}

	if !platform.Exists(path) || platform.IsDir(path) {
		return path, errors.New(errors.ETemplateMissing, "workflow template not found at "+path)
	}
	return path, nil
}

// Dir returns the workflow directory inside repoRoot.
func Dir(repoRoot string) string {
	return filepath.Join(repoRoot, filepath.FromSlash(branding.WorkflowDir()))
}

// DestPath returns where the workflow is installed inside repoRoot.
func DestPath(repoRoot string) string {
	return filepath.Join(Dir(repoRoot), branding.WorkflowFile())
}

// Install copies templatePath into repoRoot's workflow directory, creating the
// directory if needed and overwriting any previous copy. The installed file is
// byte-identical to the template. Returns the destination path.
func Install(templatePath, repoRoot string) (string, error) {
	dir := Dir(repoRoot)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", errors.Wrap(errors.EInstallFailed, "creating "+dir, err)
	}

	dst := DestPath(repoRoot)

	if err := copyFile(templatePath, dst); err != nil {
		return "", errors.Wrap(errors.EInstallFailed, fmt.Sprintf("copying %s to %s", templatePath, dst), err)
	}

	return dst, nil
}

// copyFile writes src's bytes to dst. WriteFile keeps the mode of an existing
// dst, so the mode is set explicitly afterwards.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, data, filePerm); err != nil {
		return err
	}
	return platform.Chmod(dst, filePerm)
}
