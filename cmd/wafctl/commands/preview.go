package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/render"
)

func init() {
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <file>",
	Short: "Render one page to HTML on stdout",
	Long: `Render a Markdown page to HTML for local inspection. Front matter is
stripped; the styled divs pass through unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	return runPreviewWithWriter(cmd, cmd.OutOrStdout(), args)
}

func runPreviewWithWriter(_ *cobra.Command, w io.Writer, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewUserError(err, "Pass a Markdown file path")
		}
		return err
	}

	html, err := render.Page(content)
	if err != nil {
		return errors.Wrapf(err, "rendering %s", args[0])
	}

	_, err = w.Write(html)
	return err
}
