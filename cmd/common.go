package cmd

import (
	"io"
	"os"

	"github.com/spf13/pflag"
)

// commonOptions contains options that are shared between commands
type commonOptions struct {
	output  string
	lenient bool
}

// addCommonFlags adds the common flags to a command
func addCommonFlags(flags *pflag.FlagSet, opts *commonOptions) {

	flags.StringVar(
		&opts.output,
		"output",
		"",
		`Write the transcript to a file instead of stdout`,
	)

	flags.BoolVar(
		&opts.lenient,
		"lenient",
		false,
		`Swallow a failure the filter declined to handle instead of propagating it`,
	)
}

// setupOutput handles the common transcript destination logic
func setupOutput(opts *commonOptions) (io.Writer, func() error, error) {
	if opts.output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(opts.output)
	if err != nil {
		return nil, nil, err
	}

	return file, file.Close, nil
}
