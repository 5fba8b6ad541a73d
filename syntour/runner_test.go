package syntour_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnfraga/syntour/pkg/iox"
	"github.com/jnfraga/syntour/syntour"
)

const lenientTranscript = `The name, in all caps: JOSE FRAGA
The name is: Jose Fraga
The average word length is: 3.888888888888889
The average word length is: 3.89
The length of s is: (none)
The first character of s is present: false
The cursor over ss advanced: false
caught *syntour.Failure: read length: value is absent (handled=false)
Exception must have been handled
`

func TestRunner_Lenient(t *testing.T) {
	var out bytes.Buffer

	runner, err := syntour.NewRunner(syntour.RunnerOpts{
		Out:     &out,
		Lenient: true,
	})
	require.NoError(t, err)

	err = runner.Run()
	require.NoError(t, err)

	assert.Equal(t, lenientTranscript, out.String())
}

func TestRunner_Strict(t *testing.T) {
	var out bytes.Buffer

	runner, err := syntour.NewRunner(syntour.RunnerOpts{
		Out: &out,
	})
	require.NoError(t, err)

	err = runner.Run()
	require.Error(t, err)

	var failure *syntour.Failure
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, syntour.KindAbsentValue, failure.Kind)

	// The filter logged the failure, but the closing line is never reached.
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, "caught *syntour.Failure: read length: value is absent (handled=false)", lines[7])
	assert.NotContains(t, out.String(), "Exception must have been handled")
}

func TestRunner_TranscriptSection(t *testing.T) {
	var out bytes.Buffer

	runner, err := syntour.NewRunner(syntour.RunnerOpts{
		Out:     &out,
		Lenient: true,
	})
	require.NoError(t, err)

	require.NoError(t, runner.Run())

	section, err := iox.LinesRange(&out, 3, 4)
	require.NoError(t, err)

	assert.Equal(t, "The average word length is: 3.888888888888889\nThe average word length is: 3.89", section)
}

func TestSteps(t *testing.T) {
	assert.Equal(t, []string{"person", "words", "optional", "cursor", "recover"}, syntour.Steps())
}
