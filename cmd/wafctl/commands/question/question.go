// Package question implements the `wafctl question` subcommands.
package question

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for question operations.
var Cmd = &cobra.Command{
	Use:   "question",
	Short: "Inspect and list the framework review questions",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
