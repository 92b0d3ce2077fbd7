package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/exec"
)

// MinVersion is the oldest git release known to support `git remote get-url`.
const MinVersion = "2.7.0"

// ParseVersion extracts the release from `git --version` output, e.g.
// "git version 2.39.2", "git version 2.37.1 (Apple Git-137.1)" or
// "git version 2.41.0.windows.1".
func ParseVersion(output string) (*semver.Version, error) {
	fields := strings.Fields(output)
	if len(fields) < 3 || fields[0] != "git" || fields[1] != "version" {
		return nil, fmt.Errorf("unrecognized git version output %q", strings.TrimSpace(output))
	}

	// Keep major.minor.patch; vendor suffixes are dot-separated too.
	parts := strings.SplitN(fields[2], ".", 4)
	if len(parts) > 3 {
		parts = parts[:3]
	}
	v, err := semver.NewVersion(strings.Join(parts, "."))
	if err != nil {
		return nil, fmt.Errorf("parsing git version %q: %w", fields[2], err)
	}
	return v, nil
}

// Version runs `git --version` and parses the result.
func Version(ctx context.Context, runner exec.CommandRunner) (*semver.Version, error) {
	res, err := runner.Run(ctx, "git", []string{"--version"}, exec.RunOpts{})
	if err != nil {
		return nil, fmt.Errorf("running git --version: %w", err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("git --version exited with status %d", res.ExitCode)
	}
	return ParseVersion(res.Stdout)
}

// SatisfiesMin reports whether v is at least min.
func SatisfiesMin(v *semver.Version, min string) (bool, error) {
	c, err := semver.NewConstraint(">= " + min)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", min, err)
	}
	return c.Check(v), nil
}
