package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autocomment.dev/pkg/autocomment/internal/domain"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

const (
	dryRunFlagName = "dry-run"
	diffFlagName   = "diff"
)

func newAnnotateCmd() *cobra.Command {
	var dryRun, diff bool

	cmd := &cobra.Command{
		Use:     "annotate [paths...]",
		Aliases: []string{"run"},
		Short:   "Insert comments into JavaScript sources",
		Long:    annotateLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := openWorkflow(cmd, true)
			if err != nil {
				return err
			}
			defer deps.close()

			return deps.workflow.Annotate(cmd.Context(), domain.AnnotateArgs{
				Paths:    parsePaths(args),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Language: m.Language(viper.GetString(languageConfigKey)),
				UseCache: !viper.GetBool(noCacheFlagName),
				Parallel: viper.GetInt(runParallelConfigKey),
				DryRun:   dryRun,
				Diff:     diff,
			})
		},
	}

	cmd.Flags().IntP(runParallelFlagName, "p", defaultRunParallel, "number of files annotated concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().BoolVar(&dryRun, dryRunFlagName, false, "process without saving output or recording history")
	cmd.Flags().BoolVar(&diff, diffFlagName, false, "print a unified diff per file")

	return cmd
}

func init() {
	rootCmd.AddCommand(newAnnotateCmd())
}
