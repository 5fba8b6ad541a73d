package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jnfraga/syntour/syntour"
)

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demonstration steps in execution order",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range syntour.Steps() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}
}
