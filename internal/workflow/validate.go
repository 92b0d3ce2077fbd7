package workflow

import (
	"bytes"
	_ "embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/workflow.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

var loadSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling workflow schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("workflow.schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding workflow schema: %w", err)
	}
	return c.Compile("workflow.schema.json")
})

// Report lists the schema violations found in a workflow file.
type Report struct {
	Issues []Issue
}

// Valid reports whether the workflow had no violations.
func (r *Report) Valid() bool { return len(r.Issues) == 0 }

// Summary returns a one-line count of issues, e.g. "2 issues".
func (r *Report) Summary() string {
	if len(r.Issues) == 1 {
		return "1 issue"
	}
	return printer.Sprintf("%d issues", len(r.Issues))
}

// Issue is one violation. Path is a JSON pointer into the workflow
// ("/jobs/sync/steps/0"); it is empty for the document root.
type Issue struct {
	Path    string
	Keyword string
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Validate checks workflow YAML against the embedded schema. Unparseable YAML
// is an error; schema violations are returned in the Report.
func Validate(data []byte) (*Report, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	// The validator wants JSON-decoded values, so round-trip through JSON.
	buf, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting workflow to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("converting workflow to JSON: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &Report{}, nil
	}
	var ve *jsonschema.ValidationError
	if !stderrors.As(err, &ve) {
		return nil, fmt.Errorf("validating workflow: %w", err)
	}
	return &Report{Issues: leafIssues(ve)}, nil
}

// ValidateFile reads and validates the workflow at path.
func ValidateFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Validate(data)
}

// leafIssues flattens the error tree into distinct leaf violations.
func leafIssues(root *jsonschema.ValidationError) []Issue {
	var issues []Issue
	seen := map[Issue]bool{}

	var walk func(ve *jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) > 0 {
			for _, c := range ve.Causes {
				walk(c)
			}
			return
		}
		if ve.ErrorKind == nil {
			return
		}
		kw := ve.ErrorKind.KeywordPath()
		if len(kw) == 0 {
			return
		}
		issue := Issue{Keyword: kw[len(kw)-1], Message: ve.ErrorKind.LocalizedString(printer)}
		switch issue.Keyword {
		case "oneOf", "anyOf", "allOf", "$ref":
			// branch failures; the causes carry the detail
			return
		}
		if len(ve.InstanceLocation) > 0 {
			issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	walk(root)

	if len(issues) == 0 {
		return []Issue{{Message: root.Error()}}
	}
	return issues
}
