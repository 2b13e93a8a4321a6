package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/docs"
	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/styling"
	"github.com/thoreinstein/wafctl/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(styleCmd)
}

var styleCmd = &cobra.Command{
	Use:   "style [pillar-slug...]",
	Short: "Rewrite question pages into the styled format",
	Long: `Rewrite plain question and best-practice pages into the styled
div-wrapped format: a pillar-header card, best-practice wrappers,
numbered implementation steps, service cards, and a related-resources
list. Pages already styled are untouched, so the command is safe to
re-run.

With no arguments every catalog pillar is processed.`,
	Example: `  # Restyle the whole tree
  wafctl style

  # Restyle one pillar, showing what would change
  wafctl style security --dry-run`,
	RunE: runStyle,
}

func runStyle(cmd *cobra.Command, args []string) error {
	return runStyleWithWriter(cmd, cmd.OutOrStdout(), args)
}

func runStyleWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
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
	for _, slug := range slugs {
		if _, err := cat.PillarBySlug(slug); err != nil {
			return err
		}
	}

	pages, err := docs.ScanTree(cmd.Context(), docsDir, slugs)
	if err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	dryRun := flags.GetDryRun()

	styled := 0
	for _, page := range pages {
		out, changed := styling.Apply(page.Content())
		if !changed {
			continue
		}

		if dryRun {
			log.Info("would restyle", "path", page.Path)
			styled++
			continue
		}
		if err := fileutil.WritePage(page.Path, out); err != nil {
			return err
		}
		log.Debug("restyled", "path", page.Path)
		styled++
	}

	fmt.Fprintf(w, "Styled %d pages (%d already styled or skipped)\n", styled, len(pages)-styled)
	return nil
}
