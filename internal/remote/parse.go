// Package remote derives hosted-repository coordinates from a git remote URL.
package remote

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultHost is the hosting domain used when none is configured.
const DefaultHost = "github.com"

var (
	// ErrForeignHost is returned for URLs that do not reference the host.
	ErrForeignHost = errors.New("remote does not reference the hosting domain")

	// ErrMalformed is returned for URLs that reference the host but do not
	// contain exactly one owner/name pair.
	ErrMalformed = errors.New("malformed remote URL")
)

// Coordinates identify a hosted repository.
type Coordinates struct {
	Host  string
	Owner string
	Repo  string
}

// String returns "owner/repo".
func (c Coordinates) String() string {
	return c.Owner + "/" + c.Repo
}

// SecretsURL returns the repository's Actions secrets settings page.
func (c Coordinates) SecretsURL() string {
	return fmt.Sprintf("https://%s/%s/%s/settings/secrets/actions", c.Host, c.Owner, c.Repo)
}

// Parse extracts owner and repository name from raw for the given host.
// Supported shapes:
//   - https://<host>/owner/repo[.git]
//   - user@<host>:owner/repo[.git]
//
// Any URL mentioning host that is not in one of these shapes is treated as
// the short form: everything after the last ':' is taken as the path.
func Parse(raw, host string) (Coordinates, error) {
	if host == "" {
		host = DefaultHost
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.Contains(raw, host) {
		return Coordinates{}, ErrForeignHost
	}

	var path string
	if prefix := "https://" + host + "/"; strings.HasPrefix(raw, prefix) {
		path = strings.TrimPrefix(raw, prefix)
	} else {
		path = raw[strings.LastIndex(raw, ":")+1:]
	}
	path = strings.TrimSuffix(path, ".git")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Coordinates{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	return Coordinates{Host: host, Owner: parts[0], Repo: parts[1]}, nil
}
