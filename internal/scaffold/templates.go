package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed all:templates
var templateFS embed.FS

const templateRoot = "templates/typescript"

// renderTemplate executes one embedded template against the spec.
func renderTemplate(name string, s *ProjectSpec) ([]byte, error) {
	tmplPath := path.Join(templateRoot, name)
	tmpl, err := template.New(path.Base(name)).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(templateFS, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, s); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// fromTemplate adapts renderTemplate to an artifact render function.
func fromTemplate(name string) func(*ProjectSpec) ([]byte, error) {
	return func(s *ProjectSpec) ([]byte, error) {
		return renderTemplate(name, s)
	}
}
