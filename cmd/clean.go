package cmd

import (
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove uploaded files",
		Long:  "Remove every file from the upload directory used by the files service.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := openWorkflow(cmd, false)
			if err != nil {
				return err
			}
			defer deps.close()

			return deps.workflow.Clean(cmd.Context())
		},
	}
}

func init() {
	rootCmd.AddCommand(newCleanCmd())
}
