package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/site"
)

func init() {
	navCmd.AddCommand(navOrderCmd)
	rootCmd.AddCommand(navCmd)
}

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Maintain site navigation",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var navOrderCmd = &cobra.Command{
	Use:   "order",
	Short: "Rewrite nav_order in each pillar index",
	Long: `Set the nav_order front-matter field of every pillar index per the
configured ordering (the pillar_order config key, or the built-in
default). Indexes already in order are untouched.`,
	RunE: runNavOrder,
}

func runNavOrder(cmd *cobra.Command, _ []string) error {
	return runNavOrderWithWriter(cmd, cmd.OutOrStdout())
}

func runNavOrderWithWriter(cmd *cobra.Command, w io.Writer) error {
	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	updated, err := site.SetNavOrder(cmd.Context(), docsDir, cli.PillarOrder(), flags.GetDryRun())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Updated nav_order in %d pillar indexes\n", updated)
	return nil
}
