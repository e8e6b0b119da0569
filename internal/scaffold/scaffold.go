package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"webpilot/pkg/logging"
)

// Spec describes the test file to scaffold.
type Spec struct {
	// PackageName is the Go package of the emitted file.
	PackageName string `yaml:"package"`
	// PageName is the page object the scenarios drive, e.g. Checkout.
	PageName string `yaml:"page"`
	// URL is the path the page opens.
	URL string `yaml:"url"`
	// Scenarios become one skeleton test function each.
	Scenarios []string `yaml:"scenarios"`
}

// Validate rejects specs that would render an uncompilable file.
func (s Spec) Validate() error {
	if s.PackageName == "" {
		return fmt.Errorf("package name is required")
	}
	if s.PageName == "" {
		return fmt.Errorf("page name is required")
	}
	if len(s.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario is required")
	}
	return nil
}

const fileTemplate = `package {{ .PackageName }}

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

{{- $page := .PageName }}
{{- $url := .URL }}
{{ range .Scenarios }}
func Test{{ $page | camelcase }}_{{ . | camelcase }}(t *testing.T) {
	ctx := context.Background()
	page := New{{ $page | camelcase }}Page(newDriver(t), "{{ $url }}")
	require.NoError(t, page.Open(ctx))

	// TODO: drive the {{ . }} flow and assert the outcome.
	t.Skip("scenario not implemented")
}
{{ end -}}
`

// Render produces the test-file skeleton for the spec.
func Render(spec Spec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	tmpl, err := template.New("testfile").Funcs(sprig.TxtFuncMap()).Parse(fileTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse scaffold template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, spec); err != nil {
		return "", fmt.Errorf("failed to render scaffold: %w", err)
	}
	return buf.String(), nil
}

// WriteFile renders the spec and writes it to path, creating parent
// directories. Refuses to overwrite an existing file.
func WriteFile(spec Spec, path string) error {
	content, err := Render(spec)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logging.Info("Scaffold", "Wrote %s (%d scenarios)", path, len(spec.Scenarios))
	return nil
}
