// Package branding provides compile-time identity values for the CLI.
//
// Values are read from the embedded branding.yaml; hard defaults apply when a
// key is missing. A malformed file panics on first use.
package branding

import (
	_ "embed"
	"fmt"
	"path"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	TemplateFile    string `yaml:"template_file"`
	WorkflowDir     string `yaml:"workflow_dir"`
	WorkflowFile    string `yaml:"workflow_file"`
	ProjectIDSecret string `yaml:"project_id_secret"`
	TokenSecret     string `yaml:"token_secret"`
}

// fallback holds the values used for keys branding.yaml leaves out.
var fallback = brand{
	CLIName:         "setup-overleaf-sync",
	DisplayName:     "Overleaf Sync",
	Description:     "Install a GitHub Actions workflow that keeps a repository in sync with Overleaf",
	HomeDir:         ".overleaf-sync",
	EnvPrefix:       "OVERLEAF_SYNC",
	TemplateFile:    "overleaf-sync-workflow.yml",
	WorkflowDir:     ".github/workflows",
	WorkflowFile:    "overleaf-sync.yml",
	ProjectIDSecret: "OVERLEAF_PROJECT_ID",
	TokenSecret:     "OVERLEAF_GIT_TOKEN",
}

func parse(raw []byte) (brand, error) {
	b := fallback
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return brand{}, fmt.Errorf("parsing embedded branding.yaml: %w", err)
	}
	return b, nil
}

// load panics on a malformed branding.yaml.
func load() {
	once.Do(func() {
		b, err := parse(rawBranding)
		if err != nil {
			panic(err)
		}
		defaults = b
	})
}

// CLIName returns the root command name (e.g., "setup-overleaf-sync").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".overleaf-sync").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "OVERLEAF_SYNC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateFile is the name of the workflow template shipped next to the executable.
func TemplateFile() string { load(); return defaults.TemplateFile }

// WorkflowDir is the automation directory inside the target repository, slash-separated.
func WorkflowDir() string { load(); return defaults.WorkflowDir }

// WorkflowFile is the installed workflow's file name.
func WorkflowFile() string { load(); return defaults.WorkflowFile }

// WorkflowPath is the repo-relative, slash-separated path of the installed workflow.
func WorkflowPath() string {
	load()
	return path.Join(defaults.WorkflowDir, defaults.WorkflowFile)
}

// ProjectIDSecret is the name of the secret holding the Overleaf project ID.
func ProjectIDSecret() string { load(); return defaults.ProjectIDSecret }

// TokenSecret is the name of the secret holding the Overleaf git token.
func TokenSecret() string { load(); return defaults.TokenSecret }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("template") → "OVERLEAF_SYNC_TEMPLATE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
