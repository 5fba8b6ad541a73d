package sproutx

import (
	"strconv"

	"github.com/go-sprout/sprout"
	"github.com/samber/mo"
)

// FormatRegistry struct implements the [sprout.Registry] interface, embedding the Handler to access shared functionalities.
type FormatRegistry struct {
	handler sprout.Handler
}

// NewFormatRegistry initializes and returns a new [sprout.Registry].
func NewFormatRegistry() *FormatRegistry {
	return &FormatRegistry{}
}

// Implements [sprout.Registry].
func (r *FormatRegistry) UID() string {
	return "jnfraga/syntour.format"
}

// Implements [sprout.Registry].
func (r *FormatRegistry) LinkHandler(fh sprout.Handler) error {
	r.handler = fh

	return nil
}

// Implements [sprout.Registry].
func (r *FormatRegistry) RegisterFunctions(funcsMap sprout.FunctionMap) error {
	sprout.AddFunction(funcsMap, "float2", r.Float2)
	sprout.AddFunction(funcsMap, "orNone", r.OrNone)

	return nil
}

// Float2 formats a float with exactly two decimal places.
func (r *FormatRegistry) Float2(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// OrNone renders an optional value, falling back to an absent marker.
// Only the option types used in transcripts are supported.
func (r *FormatRegistry) OrNone(value any) string {
	switch v := value.(type) {
	case mo.Option[int]:
		if n, ok := v.Get(); ok {
			return strconv.Itoa(n)
		}
	case mo.Option[string]:
		if s, ok := v.Get(); ok {
			return s
		}
	case mo.Option[rune]:
		if c, ok := v.Get(); ok {
			return string(c)
		}
	}

	return "(none)"
}
