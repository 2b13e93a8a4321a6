package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/site"
)

var (
	retitleFrom string
	retitleTo   string
)

func init() {
	retitleCmd.Flags().StringVar(&retitleFrom, "from", "", "current question title")
	retitleCmd.Flags().StringVar(&retitleTo, "to", "", "new question title")
	_ = retitleCmd.MarkFlagRequired("from")
	_ = retitleCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(retitleCmd)
}

var retitleCmd = &cobra.Command{
	Use:   "retitle <question-id>",
	Short: "Rename a question across its pages",
	Long: `Rewrite a question's title in its page, its best-practice pages, and
the pillar index. Both the "ID - title" and "ID: title" forms are
rewritten; unrelated occurrences of the old title are left alone.`,
	Example: `  wafctl retitle SEC02 \
    --from "How do you manage identities for people and machines?" \
    --to   "How do you manage authentication for people and machines?"`,
	Args: cobra.ExactArgs(1),
	RunE: runRetitle,
}

func runRetitle(cmd *cobra.Command, args []string) error {
	return runRetitleWithWriter(cmd, cmd.OutOrStdout(), args)
}

func runRetitleWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
	if retitleFrom == retitleTo {
		return errors.NewUserError(nil, "--from and --to must differ")
	}

	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}
	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	changed, err := site.Retitle(cmd.Context(), docsDir, cat, args[0], retitleFrom, retitleTo, flags.GetDryRun())
	if err != nil {
		return err
	}

	if len(changed) == 0 {
		fmt.Fprintf(w, "No pages mention the old title of %s\n", args[0])
		return nil
	}
	fmt.Fprintf(w, "Retitled %s in %d files:\n", args[0], len(changed))
	for _, path := range changed {
		fmt.Fprintf(w, "  %s\n", path)
	}
	return nil
}
