package question

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/site"
)

func init() {
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [pillar-slug...]",
	Short: "Rebuild the question-card list in each pillar index",
	Long: `Replace the question-cards block in each pillar index with explicit
cards built from the question pages on disk, in ID order. Indexes
without a Questions section are skipped.

With no arguments every catalog pillar is processed.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	return runListWithWriter(cmd, cmd.OutOrStdout(), args)
}

func runListWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}
	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	slugs := args
	if len(slugs) == 0 {
		slugs = cat.Slugs()
	}

	rebuilt := 0
	for _, slug := range slugs {
		if _, err := cat.PillarBySlug(slug); err != nil {
			return err
		}
		changed, err := site.RebuildQuestionList(cmd.Context(), docsDir, slug, flags.GetDryRun())
		if err != nil {
			return err
		}
		if changed {
			rebuilt++
		}
	}

	fmt.Fprintf(w, "Rebuilt question lists in %d pillar indexes\n", rebuilt)
	return nil
}
