package generate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/generate"
)

func init() {
	Cmd.AddCommand(indexesCmd)
}

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Generate styled pillar index pages",
	Long: `Write the styled index page of every pillar: description, key areas,
question cards, recommended services, and related resources.

Index pages are regenerated wholesale; run 'wafctl question list'
afterwards to replace the question-card template with explicit cards.`,
	RunE: runIndexes,
}

func runIndexes(cmd *cobra.Command, _ []string) error {
	return runIndexesWithWriter(cmd, cmd.OutOrStdout())
}

func runIndexesWithWriter(cmd *cobra.Command, w io.Writer) error {
	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}

	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	gen := generate.New(cat, docsDir)
	gen.DryRun = flags.GetDryRun()

	result, err := gen.IndexPages(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generated %d pillar index pages\n", result.Written)
	return nil
}
