package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autocomment.dev/pkg/autocomment/internal/controller"
	"autocomment.dev/pkg/autocomment/internal/domain"
)

const formatFlagName = "format"

func newListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and their declarations",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := controller.ParseOutputFormat(format)
			if err != nil {
				return err
			}

			deps, err := openWorkflow(cmd, false)
			if err != nil {
				return err
			}
			defer deps.close()

			return deps.workflow.List(cmd.Context(), domain.ListArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Format:  outputFormat,
			})
		},
	}

	cmd.Flags().StringVarP(&format, formatFlagName, "f", string(controller.FormatTable), "output format: table, yaml or json")

	return cmd
}

func init() {
	rootCmd.AddCommand(newListCmd())
}
