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
	Cmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Strip leftover Liquid template fragments from pillar indexes",
	RunE:  runTemplate,
}

func runTemplate(cmd *cobra.Command, _ []string) error {
	return runTemplateWithWriter(cmd, cmd.OutOrStdout())
}

func runTemplateWithWriter(cmd *cobra.Command, w io.Writer) error {
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
	for _, slug := range cat.Slugs() {
		indexPath := paths.IndexFile(docsDir, slug)
		if _, statErr := os.Stat(indexPath); os.IsNotExist(statErr) {
			continue
		}
		ok, err := rewriteDoc(indexPath, dryRun, log, links.StripTemplateResidue)
		if err != nil {
			return err
		}
		if ok {
			changed++
		}
	}

	fmt.Fprintf(w, "Stripped template fragments from %d pillar indexes\n", changed)
	return nil
}
