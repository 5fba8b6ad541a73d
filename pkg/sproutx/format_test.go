package sproutx

import (
	"strings"
	"testing"
	"text/template"

	"github.com/go-sprout/sprout"
	"github.com/samber/mo"
)

func TestFormatRegistryIntegration(t *testing.T) {
	funcs := sprout.New(
		sprout.WithRegistries(
			NewFormatRegistry(),
		),
	).Build()

	templateStr := `mean: {{ float2 .Mean }}, length: {{ orNone .Length }}`

	tmpl, err := template.New("test").Funcs(funcs).Parse(templateStr)
	if err != nil {
		t.Fatalf("Failed to parse template: %v", err)
	}

	var result strings.Builder
	err = tmpl.Execute(&result, map[string]any{
		"Mean":   35.0 / 9,
		"Length": mo.None[int](),
	})
	if err != nil {
		t.Fatalf("Failed to execute template: %v", err)
	}

	expected := "mean: 3.89, length: (none)"
	if result.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, result.String())
	}
}

func TestOrNone(t *testing.T) {
	registry := NewFormatRegistry()

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{"present int", mo.Some(9), "9"},
		{"absent int", mo.None[int](), "(none)"},
		{"present string", mo.Some("fox"), "fox"},
		{"absent string", mo.None[string](), "(none)"},
		{"present rune", mo.Some('f'), "f"},
		{"absent rune", mo.None[rune](), "(none)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := registry.OrNone(test.value); got != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, got)
			}
		})
	}
}
