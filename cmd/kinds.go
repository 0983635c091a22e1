package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Keystone/internal/engine"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List calculation kinds and the structure types they accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tSTRUCTURES")
			for _, k := range engine.Kinds() {
				structures, _ := engine.Structures(k)
				names := "any"
				if len(structures) > 0 {
					parts := make([]string, len(structures))
					for i, s := range structures {
						parts[i] = string(s)
					}
					names = strings.Join(parts, ", ")
				}
				fmt.Fprintf(tw, "%s\t%s\n", k, names)
			}
			return tw.Flush()
		},
	}
}
