// Package cmd provides the root command and CLI setup for autocomment.
package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"autocomment.dev/pkg/autocomment/internal/adapter"
	"autocomment.dev/pkg/autocomment/internal/controller"
	"autocomment.dev/pkg/autocomment/internal/domain"
	m "autocomment.dev/pkg/autocomment/internal/model"
)

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./lib app.js   scan a directory (non-recursive) and a single file`

const rootLongDescription = `Autocomment inserts one-line descriptive comments above the function, class
and variable declarations of JavaScript sources. Recognition is line based:
no parser is involved, so comments are heuristic.

` + pathPatternsHelp

const annotateLongDescription = `Annotate the given paths (default: ./...) and save the commented copies.

Unchanged files are skipped using the run history unless --no-cache is set.

` + pathPatternsHelp

const listLongDescription = `List source files and the declarations recognized in each.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "autocomment",
		Short:        "Heuristic comment generator for JavaScript",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

// configureRootFlags registers the shared flags. Flag defaults are the built-in
// defaults; config file and env values reach commands through the viper binding.
func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringP(outputFlagName, "o", adapter.DefaultCommentedDir, "directory for commented output files")
	bindFlagToConfig(flags.Lookup(outputFlagName), commentedDirKey)

	flags.Bool(noCacheFlagName, defaultNoCache, "disable cached incremental runs (re-annotate everything)")
	bindFlagToConfig(flags.Lookup(noCacheFlagName), noCacheFlagName)

	flags.StringArrayP(excludeFlagName, "x", slices.Clone(adapter.DefaultExcludes), "exclude files matching a doublestar pattern (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringArray(includeFlagName, slices.Clone(adapter.DefaultIncludes), "include files matching a doublestar pattern (can be repeated)")
	bindFlagToConfig(flags.Lookup(includeFlagName), includeConfigKey)

	flags.StringP(languageFlagName, "l", defaultLanguage, "source language")
	bindFlagToConfig(flags.Lookup(languageFlagName), languageConfigKey)

	flags.BoolP(verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// workflowDeps are the collaborators a command needs. close releases the
// history store when one was opened.
type workflowDeps struct {
	workflow domain.Workflow
	close    func()
}

// openWorkflow is swapped in tests.
var openWorkflow = newWorkflow

// newWorkflow wires the workflow for cmd. The history store is only opened
// when withHistory is set, since bbolt holds a file lock.
func newWorkflow(cmd *cobra.Command, withHistory bool) (workflowDeps, error) {
	fs := adapter.NewLocalSourceFSAdapter(viper.GetStringSlice(includeConfigKey)...)
	files := adapter.NewLocalFileManager(fs,
		m.Path(viper.GetString(uploadDirKey)),
		m.Path(viper.GetString(commentedDirKey)),
	)

	var (
		history adapter.HistoryStore
		closeFn = func() {}
	)

	if withHistory {
		store, err := adapter.NewBoltHistoryStore(m.Path(viper.GetString(historyDBKey)))
		if err != nil {
			return workflowDeps{}, err
		}

		history = store
		closeFn = func() { _ = store.Close() }
	}

	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return workflowDeps{
		workflow: domain.NewWorkflow(fs, files, history, ui, domain.NewCommentor()),
		close:    closeFn,
	}, nil
}
