// Package registry implements the `wafctl registry` subcommands.
package registry

import (
	"github.com/spf13/cobra"
)

// Cmd is the parent command for container registry operations.
var Cmd = &cobra.Command{
	Use:   "registry",
	Short: "Operate on the configured container registry",
	Long: `Talk to the container registry configured under the registry.* keys.
The endpoint must speak the Docker Registry HTTP API v2.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}
