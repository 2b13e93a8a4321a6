package fix

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/links"
	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
)

func init() {
	Cmd.AddCommand(placeholdersCmd)
}

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "Replace {title} placeholders in pillar indexes",
	Long: `Replace the literal {title} placeholder in the services heading of
each pillar index with the pillar's display title.`,
	RunE: runPlaceholders,
}

func runPlaceholders(cmd *cobra.Command, _ []string) error {
	return runPlaceholdersWithWriter(cmd, cmd.OutOrStdout())
}

func runPlaceholdersWithWriter(cmd *cobra.Command, w io.Writer) error {
	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}
	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	dryRun := flags.GetDryRun()

	changed := 0
	for _, p := range cat.Pillars {
		indexPath := paths.IndexFile(docsDir, p.Slug)
		if _, statErr := os.Stat(indexPath); os.IsNotExist(statErr) {
			continue
		}
		title := p.Name
		ok, err := rewriteDoc(indexPath, dryRun, log, func(body string) (string, bool) {
			return links.FillTitlePlaceholder(body, title)
		})
		if err != nil {
			return err
		}
		if ok {
			changed++
		}
	}

	fmt.Fprintf(w, "Filled placeholders in %d pillar indexes\n", changed)
	return nil
}
