package registry

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/registry"
)

func init() {
	Cmd.AddCommand(retagCmd)
}

var retagCmd = &cobra.Command{
	Use:   "retag",
	Short: "Re-push every tag to trigger registry replication",
	Long: `Re-push every tag of every repository in the registry: the manifest
is fetched, pushed under a temporary backup tag, pushed again under
the original tag, verified, and the backup removed. The live tag is
never deleted, so a failed run leaves every image pullable.

Backup tags that could not be removed are reported for manual cleanup
and do not fail the run.`,
	Example: `  # See what would be re-pushed
  wafctl registry retag --dry-run

  # Re-push everything
  wafctl registry retag`,
	RunE: runRetag,
}

func runRetag(cmd *cobra.Command, _ []string) error {
	return runRetagWithWriter(cmd, cmd.OutOrStdout())
}

func runRetagWithWriter(cmd *cobra.Command, w io.Writer) error {
	client, err := cli.RegistryClient()
	if err != nil {
		return err
	}

	retagger := registry.NewRetagger(client, flags.GetDryRun())
	result, err := retagger.Run(cmd.Context())
	if err != nil {
		return errors.NewSystemError(err, "Check the registry.endpoint config and registry availability")
	}

	if flags.GetDryRun() {
		fmt.Fprintf(w, "Would re-push %d tags (%d temp tags skipped)\n", result.Repushed, result.Skipped)
	} else {
		fmt.Fprintf(w, "Re-pushed %d tags (%d temp tags skipped)\n", result.Repushed, result.Skipped)
	}
	if len(result.LeakedTempTags) > 0 {
		fmt.Fprintf(w, "Backup tags left behind, remove manually:\n")
		for _, tag := range result.LeakedTempTags {
			fmt.Fprintf(w, "  %s\n", tag)
		}
	}
	return nil
}
