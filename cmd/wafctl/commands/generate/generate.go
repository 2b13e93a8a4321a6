// Package generate implements the `wafctl generate` subcommands.
package generate

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for page generation.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Scaffold documentation pages from the question catalog",
	Long: `Generate question pages, best-practice pages, and pillar index pages
from the catalog. Generated pages are scaffolds; fill in their content
and run 'wafctl style' to keep them in the styled format.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
