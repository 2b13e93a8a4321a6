package generate

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/appendix"
	"github.com/thoreinstein/wafctl/internal/catalog"
	"github.com/thoreinstein/wafctl/internal/cli"
	waferrors "github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/generate"
)

var (
	pagesStyled       bool
	pagesSkipExisting bool
	pagesFetch        bool
)

func init() {
	pagesCmd.Flags().BoolVar(&pagesStyled, "styled", false, "emit the styled (div-wrapped) template")
	pagesCmd.Flags().BoolVar(&pagesSkipExisting, "skip-existing", false, "leave existing pages untouched")
	pagesCmd.Flags().BoolVar(&pagesFetch, "fetch", false, "pull the question list from the published appendix")
	Cmd.AddCommand(pagesCmd)
}

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Generate question pages for every pillar",
	Example: `  # Scaffold plain pages from the compiled-in catalog
  wafctl generate pages

  # Styled pages, refreshed from the published appendix
  wafctl generate pages --styled --fetch

  # Fill gaps without touching existing pages
  wafctl generate pages --skip-existing`,
	RunE: runPages,
}

func runPages(cmd *cobra.Command, _ []string) error {
	return runPagesWithWriter(cmd, cmd.OutOrStdout())
}

// runPagesWithWriter allows injecting a writer for testing.
func runPagesWithWriter(cmd *cobra.Command, w io.Writer) error {
	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}

	if pagesFetch {
		published, err := appendix.NewClient(cli.AppendixURL()).Fetch(cmd.Context())
		if err != nil {
			return waferrors.NewSystemError(err, "Check network access to the appendix URL")
		}
		mergePublished(cat, published)
	}

	docsDir, err := resolveOrCreateDocsDir()
	if err != nil {
		return err
	}

	gen := generate.New(cat, docsDir)
	gen.SkipExisting = pagesSkipExisting
	gen.DryRun = flags.GetDryRun()

	result, err := gen.QuestionPages(cmd.Context(), pagesStyled)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generated %d question pages (%d skipped)\n", result.Written, result.Skipped)
	return nil
}

// mergePublished replaces each pillar's question list with the
// published one when the appendix carries that pillar.
func mergePublished(cat *catalog.Catalog, published map[string][]catalog.Question) {
	for i := range cat.Pillars {
		for name, questions := range published {
			if strings.EqualFold(name, cat.Pillars[i].Name) && len(questions) > 0 {
				cat.Pillars[i].Questions = questions
				break
			}
		}
	}
}

// resolveOrCreateDocsDir resolves the docs tree, creating it when
// generation targets a directory that does not exist yet.
func resolveOrCreateDocsDir() (string, error) {
	dir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err == nil {
		return dir, nil
	}

	target := flags.GetDocsDir()
	if target == "" {
		return "", err
	}
	if mkErr := os.MkdirAll(target, 0o755); mkErr != nil {
		return "", err
	}
	return cli.ResolveDocsDir(target)
}
