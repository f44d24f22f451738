package cmd

import (
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List recorded annotate runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := openWorkflow(cmd, true)
			if err != nil {
				return err
			}
			defer deps.close()

			return deps.workflow.History(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(newHistoryCmd())
}
