// Package fix implements the `wafctl fix` subcommands: targeted link
// and template repairs across the docs tree.
package fix

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for link repairs.
var Cmd = &cobra.Command{
	Use:   "fix",
	Short: "Repair links and template leftovers in the docs tree",
	Long: `Apply targeted repairs to pages already on disk: missing .html
extensions, missing ./ prefixes, links that need a pillar directory
prefix, leftover Liquid template fragments, and {title} placeholders.

Every repair is idempotent; pages that already match are untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
