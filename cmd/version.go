package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			version, revision, goVersion := buildVersion()
			cmd.Printf("autocomment %s\n", version)

			if revision != "" {
				cmd.Printf("revision    %s\n", revision)
			}

			cmd.Printf("go          %s\n", goVersion)
		},
	}
}

func buildVersion() (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, "", unknownVersion
	}

	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	revision := ""

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			revision = setting.Value
		}
	}

	return version, revision, info.GoVersion
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
