package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"Keystone/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of keystone",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "keystone v%s\n", version.Version)
			fmt.Fprintf(out, "commit %s, built %s\n", version.GitCommit, version.BuildTime)
		},
	}
}
