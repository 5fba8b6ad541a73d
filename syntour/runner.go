package syntour

import (
	"fmt"
	"io"
	"text/template"

	"github.com/samber/mo"
	"go.uber.org/zap"

	"github.com/jnfraga/syntour/core"
	"github.com/jnfraga/syntour/pkg/optx"
	"github.com/jnfraga/syntour/pkg/xiter"
)

// RunnerOpts contains options for the Runner.
type RunnerOpts struct {
	// Out receives the transcript. Required.
	Out io.Writer

	// Lenient swallows a failure the filter declined to handle instead of
	// propagating it, and prints the closing line.
	Lenient bool

	// Logger is optional.
	Logger *zap.Logger
}

// Runner executes the demonstration steps in their fixed order, writing one
// transcript line per print to Out. Every step runs exactly once; there are
// no retries.
type Runner struct {
	out     io.Writer
	lenient bool
	logger  *zap.Logger
	tpl     *template.Template
}

func NewRunner(opts RunnerOpts) (*Runner, error) {
	tpl, err := createTranscriptTemplate()
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		out:     opts.Out,
		lenient: opts.Lenient,
		logger:  logger,
		tpl:     tpl,
	}, nil
}

// Steps returns the demonstration names in execution order.
func Steps() []string {
	return []string{"person", "words", "optional", "cursor", "recover"}
}

// Run executes every step in order and stops at the first error.
func (r *Runner) Run() error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"person", r.personStep},
		{"words", r.wordsStep},
		{"optional", r.optionalStep},
		{"cursor", r.cursorStep},
		{"recover", r.recoverStep},
	}

	for _, step := range steps {
		r.logger.Debug("running step", zap.String("step", step.name))

		if err := step.run(); err != nil {
			return err
		}
	}

	return nil
}

// personStep constructs an immutable Person and prints its derived forms.
func (r *Runner) personStep() error {
	person := core.NewPerson("Jose", "N/A", "Fraga")

	err := r.render("allcaps", struct{ AllCaps string }{person.AllCaps()})
	if err != nil {
		return err
	}

	return r.render("display", struct{ Display string }{person.DisplayString()})
}

// wordsStep prints the average word length of the fixed sentence, first with
// default formatting, then with exactly two decimal places.
func (r *Runner) wordsStep() error {
	mean := AverageWordLength(Sentence)

	err := r.render("mean", struct{ Mean float64 }{mean})
	if err != nil {
		return err
	}

	return r.render("mean2", struct{ Mean float64 }{mean})
}

// optionalStep probes an absent string with safe navigation: the length and
// the first character both short-circuit to absent instead of failing.
func (r *Runner) optionalStep() error {
	s := mo.None[string]()

	length := optx.Map(s, func(v string) int {
		return len(v)
	})

	err := r.render("optlen", struct{ Length mo.Option[int] }{length})
	if err != nil {
		return err
	}

	first := optx.FlatMap(s, func(v string) mo.Option[rune] {
		runes := []rune(v)
		if len(runes) == 0 {
			return mo.None[rune]()
		}

		return mo.Some(runes[0])
	})

	return r.render("optfirst", struct{ Present bool }{first.IsPresent()})
}

// cursorStep chains safe navigation over an absent string: rune sequence,
// then a pull cursor, then one advance. Any absent link short-circuits the
// chain to the fallback default false.
func (r *Runner) cursorStep() error {
	ss := mo.None[string]()

	advanced := optx.Map(ss, func(v string) bool {
		return xiter.Advance(xiter.Runes(v))
	}).OrElse(false)

	return r.render("cursor", struct{ Advanced bool }{advanced})
}

// recoverStep reads the length of an absent value, an operation guaranteed
// to fail, and runs the caught failure through a filter that logs it and
// declines to handle it. In strict mode the failure then propagates and the
// closing line is never reached; in lenient mode the filter having run is
// deliberately conflated with the failure being handled.
func (r *Runner) recoverStep() error {
	_, err := Length(mo.None[string]())
	if err != nil {
		handled, renderErr := r.filterFailure(err)
		if renderErr != nil {
			return renderErr
		}

		if !handled && !r.lenient {
			return err
		}
	}

	return r.render("closing", nil)
}

// filterFailure reports the failure's runtime type and message, then returns
// false: the failure is not considered handled.
func (r *Runner) filterFailure(err error) (bool, error) {
	r.logger.Warn("failure reached the filter", zap.Error(err))

	renderErr := r.render("caught", struct {
		Type    string
		Message string
		Handled bool
	}{
		Type:    fmt.Sprintf("%T", err),
		Message: err.Error(),
		Handled: false,
	})

	return false, renderErr
}

func (r *Runner) render(name string, data any) error {
	err := r.tpl.ExecuteTemplate(r.out, name, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	_, err = io.WriteString(r.out, "\n")

	return err
}
