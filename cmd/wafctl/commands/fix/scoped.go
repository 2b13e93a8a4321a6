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
	Cmd.AddCommand(scopedCmd)
}

var scopedCmd = &cobra.Command{
	Use:   "scoped [pillar-slug...]",
	Short: "Scope pillar index links to the pillar directory",
	Long: `Rewrite href="./SEC01.html" into href="./security/SEC01.html" in a
pillar's index page, so links still resolve when the index is served
from above the pillar directory.

With no arguments every catalog pillar is processed.`,
	RunE: runScoped,
}

func runScoped(cmd *cobra.Command, args []string) error {
	return runScopedWithWriter(cmd, cmd.OutOrStdout(), args)
}

func runScopedWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
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

	log := logging.FromContext(cmd.Context())
	dryRun := flags.GetDryRun()

	changed := 0
	for _, slug := range slugs {
		pillar, err := cat.PillarBySlug(slug)
		if err != nil {
			return err
		}

		indexPath := paths.IndexFile(docsDir, slug)
		if _, statErr := os.Stat(indexPath); os.IsNotExist(statErr) {
			log.Warn("pillar index missing, skipping", "pillar", slug, "path", indexPath)
			continue
		}

		ok, err := rewriteDoc(indexPath, dryRun, log, func(body string) (string, bool) {
			return links.ScopeToPillar(body, pillar.Abbr, pillar.Slug)
		})
		if err != nil {
			return err
		}
		if ok {
			changed++
		}
	}

	fmt.Fprintf(w, "Scoped links in %d pillar indexes\n", changed)
	return nil
}
