package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/appendix"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/site"
)

func init() {
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Compare the tree against the published question list",
	Long: `Fetch the published framework appendix and compare its question list
against the local tree, pillar by pillar: missing question pages,
extra pages not in the appendix, and missing pillar directories.

A tree that does not match is reported but still exits zero; only a
fetch or parse failure is an error.`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, _ []string) error {
	return runVerifyWithWriter(cmd, cmd.OutOrStdout())
}

func runVerifyWithWriter(cmd *cobra.Command, w io.Writer) error {
	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}
	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	published, err := appendix.NewClient(cli.AppendixURL()).Fetch(cmd.Context())
	if err != nil {
		return errors.NewSystemError(err, "Check network access to the appendix URL")
	}

	reports := site.Compare(cmd.Context(), docsDir, cat, published)

	clean := true
	for _, r := range reports {
		if r.Clean() {
			fmt.Fprintf(w, "%s %s: %d questions\n", color.GreenString("✓"), r.Pillar, r.LocalCount)
			continue
		}
		clean = false

		if r.DirMissing {
			fmt.Fprintf(w, "%s %s: pillar directory missing\n", color.RedString("✗"), r.Pillar)
			continue
		}
		fmt.Fprintf(w, "%s %s: %d local, %d published\n", color.RedString("✗"), r.Pillar, r.LocalCount, r.Published)
		for _, q := range r.Missing {
			fmt.Fprintf(w, "  %s %s: %s\n", color.RedString("missing"), q.ID, q.Title)
		}
		for _, id := range r.Extra {
			fmt.Fprintf(w, "  %s %s\n", color.YellowString("extra"), id)
		}
	}

	if clean {
		fmt.Fprintln(w, color.GreenString("All pillars match the published question list"))
	}
	return nil
}
