package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autocomment.dev/pkg/autocomment/internal/domain"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <file>",
		Short: "Show a file with generated comments highlighted",
		Long: `Process one file in memory and show the annotated text with the inserted
comment lines highlighted. Long output opens a scrollable pager on a terminal.
Nothing is written to disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openWorkflow(cmd, false)
			if err != nil {
				return err
			}
			defer deps.close()

			return deps.workflow.View(cmd.Context(), domain.ViewArgs{
				Path:     m.Path(args[0]),
				Language: m.Language(viper.GetString(languageConfigKey)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(newViewCmd())
}
