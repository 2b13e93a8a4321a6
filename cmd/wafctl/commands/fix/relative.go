package fix

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/docs"
	"github.com/thoreinstein/wafctl/internal/links"
	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
)

func init() {
	Cmd.AddCommand(relativeCmd)
}

var relativeCmd = &cobra.Command{
	Use:   "relative [pillar-slug...]",
	Short: "Prefix same-directory page links with ./",
	Long: `Rewrite href="SEC01.html" into href="./SEC01.html" within each
pillar directory. The index page gets both question and best-practice
links prefixed; question pages only link their own best-practice pages.

With no arguments every catalog pillar is processed.`,
	RunE: runRelative,
}

func runRelative(cmd *cobra.Command, args []string) error {
	return runRelativeWithWriter(cmd, cmd.OutOrStdout(), args)
}

func runRelativeWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
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
		if _, statErr := os.Stat(indexPath); statErr == nil {
			ok, err := rewriteDoc(indexPath, dryRun, log, func(body string) (string, bool) {
				return links.MakeRelative(body, pillar.Abbr, true)
			})
			if err != nil {
				return err
			}
			if ok {
				changed++
			}
		}

		pages, err := docs.ScanPillar(paths.PillarDir(docsDir, slug))
		if err != nil {
			return err
		}
		for _, page := range pages {
			out, ok := links.MakeRelative(string(page.Body), pillar.Abbr, false)
			if !ok {
				continue
			}
			if dryRun {
				log.Info("would prefix links", "path", page.Path)
				changed++
				continue
			}
			page.Body = []byte(out)
			if err := page.Save(); err != nil {
				return err
			}
			log.Debug("prefixed links", "path", page.Path)
			changed++
		}
	}

	fmt.Fprintf(w, "Fixed relative links in %d files\n", changed)
	return nil
}

// rewriteDoc loads a page, applies one body transform, and saves it
// when the transform reports a change.
func rewriteDoc(path string, dryRun bool, log *slog.Logger, transform func(string) (string, bool)) (bool, error) {
	doc, err := docs.Load(path)
	if err != nil {
		return false, err
	}
	out, ok := transform(string(doc.Body))
	if !ok {
		return false, nil
	}
	if dryRun {
		log.Info("would rewrite links", "path", path)
		return true, nil
	}
	doc.Body = []byte(out)
	if err := doc.Save(); err != nil {
		return false, err
	}
	log.Debug("rewrote links", "path", path)
	return true, nil
}
