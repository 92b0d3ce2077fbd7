//go:build integration

package integration_test

import (
	"bytes"
	"context"
	"os"
	osexec "os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/exec"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/logger"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/setup"
)

// testEnv holds a bare "origin" repository and a working clone of it.
type testEnv struct {
	Origin   string // bare repository the clone pushes to
	Clone    string // working copy the workflow is installed into
	Template string // workflow template file
	Out      *bytes.Buffer
}

// setupTestEnv creates an isolated origin/clone pair with one initial commit.
// Global git config is sandboxed so the user's settings never leak in.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if _, err := osexec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test Author")
	t.Setenv("GIT_AUTHOR_EMAIL", "author@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test Author")
	t.Setenv("GIT_COMMITTER_EMAIL", "author@example.com")

	root := t.TempDir()
	env := &testEnv{
		Origin:   filepath.Join(root, "origin.git"),
		Clone:    filepath.Join(root, "thesis"),
		Template: filepath.Join(root, "overleaf-sync-workflow.yml"),
		Out:      &bytes.Buffer{},
	}

	git(t, root, "init", "--bare", env.Origin)
	git(t, env.Origin, "symbolic-ref", "HEAD", "refs/heads/main")
	git(t, root, "clone", env.Origin, env.Clone)
	git(t, env.Clone, "symbolic-ref", "HEAD", "refs/heads/main")
	writeFile(t, filepath.Join(env.Clone, "main.tex"), "\\documentclass{article}\n")
	git(t, env.Clone, "add", "main.tex")
	git(t, env.Clone, "commit", "-m", "Initial commit")
	git(t, env.Clone, "push", "-u", "origin", "main")

	shipped, err := os.ReadFile(filepath.Join("..", "..", "overleaf-sync-workflow.yml"))
	if err != nil {
		t.Fatalf("reading shipped template: %v", err)
	}
	writeFile(t, env.Template, string(shipped))

	return env
}

// run executes a setup run against the real git binary.
func (e *testEnv) run(t *testing.T, opts setup.Options) (*setup.Result, error) {
	t.Helper()
	if opts.RepoPath == "" {
		opts.RepoPath = e.Clone
	}
	if opts.TemplatePath == "" {
		opts.TemplatePath = e.Template
	}
	s := setup.New(exec.NewRealRunner(), logger.New(e.Out, false))
	return s.Run(context.Background(), opts)
}

// git runs a git command in dir and returns trimmed stdout.
func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	runner := exec.NewRealRunner()
	res, err := runner.Run(context.Background(), "git", args, exec.RunOpts{Dir: dir})
	if err != nil {
		t.Fatalf("git %s: %v", strings.Join(args, " "), err)
	}
	if res.ExitCode != 0 {
		t.Fatalf("git %s: exit %d: %s", strings.Join(args, " "), res.ExitCode, res.Stderr)
	}
	return strings.TrimSpace(res.Stdout)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}
