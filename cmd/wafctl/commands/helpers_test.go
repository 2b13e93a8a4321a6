package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
	"github.com/thoreinstein/wafctl/internal/logging"
)

// newTestCmd returns a command carrying a discard logger, the way the
// root command seeds the context before a run function fires.
func newTestCmd(t *testing.T) *cobra.Command {
	t.Helper()
	c := &cobra.Command{}
	c.SetContext(logging.NewContext(context.Background(), logging.NewDiscard()))
	return c
}

// useDocsDir points the docs-dir flag at dir for the duration of the test.
func useDocsDir(t *testing.T, dir string) {
	t.Helper()
	flags.SetDocsDir(dir)
	flags.SetDryRun(false)
	t.Cleanup(func() {
		flags.SetDocsDir("")
		flags.SetDryRun(false)
	})
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
