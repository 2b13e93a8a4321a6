package generate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/generate"
)

var practicesSkipExisting bool

func init() {
	practicesCmd.Flags().BoolVar(&practicesSkipExisting, "skip-existing", false, "leave existing pages untouched")
	Cmd.AddCommand(practicesCmd)
}

var practicesCmd = &cobra.Command{
	Use:   "practices",
	Short: "Generate best-practice pages from the catalog",
	Long: `Generate a page for every best practice in the catalog, nested under
its parent question in the navigation.`,
	RunE: runPractices,
}

func runPractices(cmd *cobra.Command, _ []string) error {
	return runPracticesWithWriter(cmd, cmd.OutOrStdout())
}

func runPracticesWithWriter(cmd *cobra.Command, w io.Writer) error {
	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}

	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	gen := generate.New(cat, docsDir)
	gen.SkipExisting = practicesSkipExisting
	gen.DryRun = flags.GetDryRun()

	result, err := gen.PracticePages(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Generated %d best-practice pages (%d skipped)\n", result.Written, result.Skipped)
	return nil
}
