// Package setup installs the Overleaf sync workflow into a git repository and
// prints the follow-up steps.
package setup

import (
	"context"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/branding"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/errors"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/exec"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/git"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/guidance"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/logger"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/platform"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/remote"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/workflow"
)

const (
	// CommitMessage is used when --commit is given.
	CommitMessage = "Add Overleaf sync GitHub Action workflow"

	// ManualCommitMessage is what the printed manual instructions suggest.
	ManualCommitMessage = "Add Overleaf sync workflow"
)

// Options control a single setup run.
type Options struct {
	RepoPath     string // target repository, relative or absolute
	OverleafID   string // echoed in the guidance only
	Commit       bool   // stage, commit and push the installed file
	TemplatePath string // empty means "next to the executable"
	Host         string // hosting domain; empty means github.com
	RemoteName   string // empty means origin
}

func (o Options) remoteName() string {
	if o.RemoteName == "" {
		return "origin"
	}
	return o.RemoteName
}

func (o Options) host() string {
	if o.Host == "" {
		return remote.DefaultHost
	}
	return o.Host
}

// Result describes what a successful run did.
type Result struct {
	RepoRoot     string
	WorkflowPath string
	Coordinates  *remote.Coordinates // nil when no matching remote was found
	Committed    bool
	Warnings     []string
}

// Scaffolder performs setup runs.
type Scaffolder struct {
	Runner exec.CommandRunner
	Log    *logger.Logger
}

// New returns a Scaffolder that runs git through runner and prints to log.
func New(runner exec.CommandRunner, log *logger.Logger) *Scaffolder {
	return &Scaffolder{Runner: runner, Log: log}
}

// Run executes the full setup sequence. Every returned error is terminal;
// a workflow file installed before the failure is left in place.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	root, err := ResolveRepo(opts.RepoPath)
	if err != nil {
		return nil, err
	}

	s.Log.Heading("Setting up Overleaf sync for: %s", filepath.Base(root))
	s.Log.Println()

	tmpl, err := workflow.Locate(opts.TemplatePath)
	if err != nil {
		return nil, err
	}
	s.Log.Debug("using template %s", tmpl)

	dst, err := workflow.Install(tmpl, root)
	if err != nil {
		return nil, err
	}
	s.Log.Success("Created workflow file: %s", branding.WorkflowPath())
	s.Log.Println()

	result := &Result{RepoRoot: root, WorkflowPath: dst}
	result.Warnings = s.checkTemplate(tmpl)

	repo := git.NewRepo(root, s.Runner, s.Log)

	coords, err := s.coordinates(ctx, repo, opts)
	if err != nil {
		return result, err
	}
	if coords != nil {
		result.Coordinates = coords
		if err := guidance.Secrets(s.Log.Writer(), guidance.SecretsData{
			Coordinates: *coords,
			OverleafID:  opts.OverleafID,
		}); err != nil {
			return result, errors.Wrap(errors.EInternal, "printing secrets guidance", err)
		}
	}

	if opts.Commit {
		if err := s.commitAndPush(ctx, repo); err != nil {
			return result, err
		}
		result.Committed = true
	} else if err := guidance.ManualCommit(s.Log.Writer(), guidance.ManualData{
		RepoPath:      root,
		CommitMessage: ManualCommitMessage,
	}); err != nil {
		return result, errors.Wrap(errors.EInternal, "printing commit instructions", err)
	}

	s.Log.Success("Setup complete!")
	if err := guidance.Outro(s.Log.Writer()); err != nil {
		return result, errors.Wrap(errors.EInternal, "printing summary", err)
	}

	return result, nil
}

// ResolveRepo turns path into an absolute, symlink-free repository root and
// checks that it holds git metadata.
func ResolveRepo(path string) (string, error) {
	root, err := platform.ResolvePath(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.New(errors.EPathNotFound, "Repository path does not exist: "+root)
		}
		return "", errors.Wrap(errors.EPathNotFound, "resolving repository path "+path, err)
	}

	// .git is a directory in a normal clone and a file in a linked worktree.
	if !platform.Exists(filepath.Join(root, ".git")) {
		return "", errors.New(errors.ENotARepo, root+" is not a git repository")
	}
	return root, nil
}

// checkTemplate validates the template and prints any issues as warnings.
func (s *Scaffolder) checkTemplate(tmpl string) []string {
	res, err := workflow.ValidateFile(tmpl)
	if err != nil {
		msg := "could not validate workflow template: " + err.Error()
		s.Log.Warn("%s", msg)
		return []string{msg}
	}
	if res.Valid() {
		return nil
	}

	s.Log.Warn("workflow template has %s:", res.Summary())
	warnings := make([]string, 0, len(res.Issues))
	for _, issue := range res.Issues {
		s.Log.Warn("  %s", issue)
		warnings = append(warnings, issue.String())
	}
	s.Log.Println()
	return warnings
}

// coordinates reads the remote URL and parses it. A missing remote or a
// remote on another host yields (nil, nil).
func (s *Scaffolder) coordinates(ctx context.Context, repo *git.Repo, opts Options) (*remote.Coordinates, error) {
	url, err := repo.RemoteURL(ctx, opts.remoteName())
	if err != nil {
		s.Log.Debug("no %s remote: %v", opts.remoteName(), err)
		return nil, nil
	}

	c, err := remote.Parse(url, opts.host())
	switch {
	case err == nil:
		return &c, nil
	case stderrors.Is(err, remote.ErrForeignHost):
		s.Log.Debug("remote %s is not hosted on %s", url, opts.host())
		return nil, nil
	default:
		return nil, errors.WrapWithDetails(errors.EMalformedRemote,
			"cannot derive owner/repository from remote "+opts.remoteName(), err,
			map[string]string{"url": url})
	}
}

func (s *Scaffolder) commitAndPush(ctx context.Context, repo *git.Repo) error {
	s.Log.Info("Committing and pushing workflow file...")
	if err := repo.Add(ctx, branding.WorkflowPath()); err != nil {
		return err
	}
	if err := repo.Commit(ctx, CommitMessage); err != nil {
		return err
	}
	if err := repo.Push(ctx); err != nil {
		return err
	}
	s.Log.Success("Pushed to GitHub")
	s.Log.Println()
	return nil
}
