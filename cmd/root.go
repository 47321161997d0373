package cmd

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "fcfs",
		Short:         "First-come-first-served cpu scheduling simulator",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		ServeCommand(),
		RunCommand(),
		VersionCommand(),
	)
	return cmd
}

func VersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(Version)
		},
	}
}
