// Package cli defines the Cobra command tree for setup-overleaf-sync. The root
// command installs the workflow into the repository given as its argument;
// version, config and doctor are registered from their own files. Commands
// only handle flags and output and delegate to internal/setup.
package cli
