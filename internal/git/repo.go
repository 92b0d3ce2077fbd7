// Package git runs the git operations setup needs through exec.CommandRunner.
package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/errors"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/exec"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/logger"
)

// Repo is a git working tree on disk.
type Repo struct {
	Dir    string
	Runner exec.CommandRunner
	Log    *logger.Logger // optional; used for --debug tracing
}

// NewRepo returns a Repo rooted at dir.
func NewRepo(dir string, runner exec.CommandRunner, log *logger.Logger) *Repo {
	return &Repo{Dir: dir, Runner: runner, Log: log}
}

// run invokes git once in the repo directory.
func (r *Repo) run(ctx context.Context, args ...string) (exec.CmdResult, error) {
	r.debug("git %s (in %s)", strings.Join(args, " "), r.Dir)
	res, err := r.Runner.Run(ctx, "git", args, exec.RunOpts{Dir: r.Dir})
	if err != nil {
		r.debug("git %s: %v", args[0], err)
		return res, err
	}
	r.debug("git %s exited %d", args[0], res.ExitCode)
	return res, nil
}

// mustRun invokes git and converts any failure into an E_COMMAND_FAILED error
// carrying the captured output.
func (r *Repo) mustRun(ctx context.Context, args ...string) (exec.CmdResult, error) {
	cmdline := "git " + strings.Join(args, " ")
	res, err := r.run(ctx, args...)
	if err != nil {
		return res, errors.Wrap(errors.ECommandFailed, "running "+cmdline, err)
	}
	if res.ExitCode != 0 {
		return res, &errors.SetupError{
			Code:       errors.ECommandFailed,
			Msg:        fmt.Sprintf("%s exited with status %d", cmdline, res.ExitCode),
			Details:    map[string]string{"stdout": res.Stdout, "stderr": res.Stderr},
			ExitStatus: res.ExitCode,
		}
	}
	return res, nil
}

func (r *Repo) debug(format string, a ...any) {
	if r.Log != nil {
		r.Log.Debug(format, a...)
	}
}

// RemoteURL returns the URL configured for the named remote.
// It fails when git cannot run or the remote does not exist; callers treat
// that as "no remote configured".
func (r *Repo) RemoteURL(ctx context.Context, name string) (string, error) {
	res, err := r.run(ctx, "remote", "get-url", name)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("git remote get-url %s: exit status %d: %s", name, res.ExitCode, strings.TrimSpace(res.Stderr))
	}
	return strings.TrimSpace(res.Stdout), nil
}

// Add stages path (relative to the repo root).
func (r *Repo) Add(ctx context.Context, path string) error {
	_, err := r.mustRun(ctx, "add", path)
	return err
}

// Commit records staged changes with message.
func (r *Repo) Commit(ctx context.Context, message string) error {
	_, err := r.mustRun(ctx, "commit", "-m", message)
	return err
}

// Push pushes the current branch to its upstream.
func (r *Repo) Push(ctx context.Context) error {
	_, err := r.mustRun(ctx, "push")
	return err
}
