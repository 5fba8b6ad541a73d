package cmd

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jnfraga/syntour/pkg/iox"
	"github.com/jnfraga/syntour/syntour"
)

type runOptions struct {
	commonOptions

	lines string
}

func NewRunCommand(cli *Cli) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration sequence",
		Long: `Run the fixed demonstration sequence and print its transcript:
an immutable Person and its derived forms, the average word length of a
fixed sentence, safe navigation over absent values, and a failure filter
that logs without handling.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg := cli.Config(); cfg != nil && !cmd.Flags().Changed("lenient") {
				opts.lenient = cfg.Lenient
			}

			return runRun(cli, &opts)
		},
	}

	flags := cmd.Flags()

	addCommonFlags(flags, &opts.commonOptions)

	flags.StringVar(
		&opts.lines,
		"lines",
		"",
		`Print only the given line range of the transcript (e.g. "3:4")`,
	)

	return cmd
}

func runRun(cli *Cli, opts *runOptions) error {
	out, closeOut, err := setupOutput(&opts.commonOptions)
	if err != nil {
		return err
	}
	defer closeOut()

	target := out

	var buffer *bytes.Buffer
	if opts.lines != "" {
		buffer = new(bytes.Buffer)
		target = buffer
	}

	runner, err := syntour.NewRunner(syntour.RunnerOpts{
		Out:     target,
		Lenient: opts.lenient,
		Logger:  cli.Logger(),
	})
	if err != nil {
		return err
	}

	runErr := runner.Run()

	if buffer != nil {
		from, to, err := parseLineRange(opts.lines)
		if err != nil {
			return err
		}

		section, err := iox.LinesRange(buffer, from, to)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(out, section)
		if err != nil {
			return err
		}
	}

	return runErr
}

func parseLineRange(s string) (int, int, error) {
	from, to, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid line range: %s", s)
	}

	fromLine, err := strconv.Atoi(from)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line range: %s", s)
	}

	toLine, err := strconv.Atoi(to)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line range: %s", s)
	}

	return fromLine, toLine, nil
}
