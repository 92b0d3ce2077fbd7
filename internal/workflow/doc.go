// Package workflow locates, validates and installs the Overleaf sync
// GitHub Actions workflow. The template ships next to the executable and is
// copied verbatim into <repo>/.github/workflows/overleaf-sync.yml. Validation
// against an embedded JSON schema is advisory: callers print issues as warnings.
package workflow
