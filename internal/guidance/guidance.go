// Package guidance renders the instructions printed after the workflow is installed.
package guidance

import (
	"embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/overleaf-sync/setup-overleaf-sync/internal/branding"
	"github.com/overleaf-sync/setup-overleaf-sync/internal/remote"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const ruleWidth = 70

var templates = template.Must(
	template.New("guidance").
		Funcs(template.FuncMap{"rule": func() string { return strings.Repeat("=", ruleWidth) }}).
		ParseFS(templateFS, "templates/*.tmpl"),
)

// SecretsData fills the credential-setup block.
type SecretsData struct {
	Coordinates remote.Coordinates
	OverleafID  string // optional; echoed verbatim
}

func (d SecretsData) SecretsURL() string      { return d.Coordinates.SecretsURL() }
func (d SecretsData) ProjectIDSecret() string { return branding.ProjectIDSecret() }
func (d SecretsData) TokenSecret() string     { return branding.TokenSecret() }

// ManualData fills the manual commit instructions.
type ManualData struct {
	RepoPath      string
	CommitMessage string
}

func (d ManualData) WorkflowPath() string { return branding.WorkflowPath() }

// Secrets writes the "NEXT STEPS" block naming the secrets page and both secrets.
func Secrets(w io.Writer, data SecretsData) error {
	return render(w, "secrets.tmpl", data)
}

// ManualCommit writes the commands that stage, commit and push the workflow by hand.
func ManualCommit(w io.Writer, data ManualData) error {
	return render(w, "manual.tmpl", data)
}

// Outro writes what the installed workflow does once secrets are in place.
func Outro(w io.Writer) error {
	return render(w, "outro.tmpl", nil)
}

func render(w io.Writer, name string, data any) error {
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
