package setup

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/git"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/remote"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/workflow"
)

// Check is the outcome of one doctor probe.
type Check struct {
	Name   string
	OK     bool
	Detail string
}

// Diagnose runs the read-only checks behind `doctor`. It never writes to the
// target repository. opts.RepoPath is optional; repository checks are skipped
// when it is empty.
func (s *Scaffolder) Diagnose(ctx context.Context, opts Options) []Check {
	var checks []Check

	checks = append(checks, s.checkGit(ctx))
	checks = append(checks, checkTemplateFile(opts.TemplatePath)...)

	if opts.RepoPath != "" {
		checks = append(checks, s.checkRepo(ctx, opts)...)
	}
	return checks
}

// Healthy reports whether every check passed.
func Healthy(checks []Check) bool {
	for _, c := range checks {
		if !c.OK {
			return false
		}
	}
	return true
}

func (s *Scaffolder) checkGit(ctx context.Context) Check {
	c := Check{Name: "git"}
	v, err := git.Version(ctx, s.Runner)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	ok, err := git.SatisfiesMin(v, git.MinVersion)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	if !ok {
		c.Detail = fmt.Sprintf("version %s is older than %s", v, git.MinVersion)
		return c
	}
	c.OK = true
	c.Detail = "version " + v.String()
	return c
}

func checkTemplateFile(override string) []Check {
	located := Check{Name: "template"}
	path, err := workflow.Locate(override)
	if err != nil {
		located.Detail = err.Error()
		return []Check{located}
	}
	located.OK = true
	located.Detail = path

	valid := Check{Name: "template schema"}
	res, err := workflow.ValidateFile(path)
	switch {
	case err != nil:
		valid.Detail = err.Error()
	case !res.Valid():
		valid.Detail = res.Summary()
		if len(res.Issues) > 0 {
			valid.Detail += ", first: " + res.Issues[0].String()
		}
	default:
		valid.OK = true
		valid.Detail = "valid"
	}
	return []Check{located, valid}
}

func (s *Scaffolder) checkRepo(ctx context.Context, opts Options) []Check {
	repoCheck := Check{Name: "repository"}
	root, err := ResolveRepo(opts.RepoPath)
	if err != nil {
		repoCheck.Detail = err.Error()
		return []Check{repoCheck}
	}
	repoCheck.OK = true
	repoCheck.Detail = root

	// A missing or foreign remote only means no guidance is printed.
	remoteCheck := Check{Name: "remote " + opts.remoteName(), OK: true}
	url, err := git.NewRepo(root, s.Runner, s.Log).RemoteURL(ctx, opts.remoteName())
	if err != nil {
		remoteCheck.Detail = "not configured; secrets guidance will be skipped"
		return []Check{repoCheck, remoteCheck}
	}

	c, err := remote.Parse(url, opts.host())
	switch {
	case err == nil:
		remoteCheck.Detail = c.String()
	case stderrors.Is(err, remote.ErrForeignHost):
		remoteCheck.Detail = fmt.Sprintf("%s is not on %s; secrets guidance will be skipped", url, opts.host())
	default:
		remoteCheck.OK = false
		remoteCheck.Detail = err.Error()
	}
	return []Check{repoCheck, remoteCheck}
}
