package iox_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jnfraga/syntour/pkg/iox"
)

func TestLinesRange(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	section, err := iox.LinesRange(strings.NewReader(input), 2, 3)
	require.NoError(t, err)

	assert.Equal(t, "two\nthree", section)
}

func TestLinesRange_UntilEOF(t *testing.T) {
	section, err := iox.LinesRange(strings.NewReader("one\ntwo\n"), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo", section)
}

func TestLinesRange_InvalidRange(t *testing.T) {
	_, err := iox.LinesRange(strings.NewReader("one\n"), 3, 2)
	assert.Error(t, err)
}
