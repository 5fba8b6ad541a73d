package syntour

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/go-sprout/sprout"
	sproutstrings "github.com/go-sprout/sprout/registry/strings"

	"github.com/jnfraga/syntour/pkg/sproutx"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// createTranscriptTemplate parses the embedded transcript templates with the
// sprout function map used for rendering.
func createTranscriptTemplate() (*template.Template, error) {
	funcs := sprout.New(
		sprout.WithRegistries(
			sproutstrings.NewRegistry(),
			sproutx.NewFormatRegistry(),
		),
	).Build()

	tpl, err := template.New("transcript").Funcs(funcs).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse transcript templates: %w", err)
	}

	return tpl, nil
}
