package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	xcmd "github.com/jnfraga/syntour/cmd"
	"github.com/jnfraga/syntour/internal/config"
)

var version = "dev"

func main() {
	cli := xcmd.NewCli()

	var verbose bool

	cmd := &cobra.Command{
		Use:     "syntour <command>",
		Short:   "syntour - a runnable tour of value, optional, and failure-handling idioms",
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			return cli.Init(cfg, verbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cli.Close()
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(
		xcmd.NewRunCommand(cli),
		xcmd.NewListCommand(),
	)

	err := cmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("Unable to determine home directory: %w", err)
	}

	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, fmt.Errorf("Unable to load config: %w", err)
	}

	return cfg, nil
}
