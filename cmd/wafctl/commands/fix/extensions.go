package fix

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/docs"
	"github.com/thoreinstein/wafctl/internal/links"
	"github.com/thoreinstein/wafctl/internal/logging"
)

func init() {
	Cmd.AddCommand(extensionsCmd)
}

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Add missing .html extensions to page links",
	Long: `Rewrite extensionless page links like href="./SEC01" into
href="SEC01.html" across every markdown file in the docs tree.`,
	RunE: runExtensions,
}

func runExtensions(cmd *cobra.Command, _ []string) error {
	return runExtensionsWithWriter(cmd, cmd.OutOrStdout())
}

func runExtensionsWithWriter(cmd *cobra.Command, w io.Writer) error {
	docsDir, err := cli.ResolveDocsDir(flags.GetDocsDir())
	if err != nil {
		return err
	}

	log := logging.FromContext(cmd.Context())
	dryRun := flags.GetDryRun()

	changed := 0
	err = filepath.WalkDir(docsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}

		doc, err := docs.Load(path)
		if err != nil {
			return err
		}
		out, ok := links.AddExtensions(string(doc.Body))
		if !ok {
			return nil
		}

		if dryRun {
			log.Info("would add extensions", "path", path)
			changed++
			return nil
		}
		doc.Body = []byte(out)
		if err := doc.Save(); err != nil {
			return err
		}
		log.Debug("added extensions", "path", path)
		changed++
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "walking docs tree")
	}

	fmt.Fprintf(w, "Fixed extensions in %d files\n", changed)
	return nil
}
