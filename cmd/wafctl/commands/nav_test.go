package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNavOrderCommand(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "security", "index.md"),
		"---\ntitle: Security\nnav_order: 9\n---\n\n# Security\n")
	writeTestFile(t, filepath.Join(root, "reliability", "index.md"),
		"---\ntitle: Reliability\nnav_order: 3\n---\n\n# Reliability\n")
	useDocsDir(t, root)

	var buf bytes.Buffer
	if err := runNavOrderWithWriter(newTestCmd(t), &buf); err != nil {
		t.Fatalf("runNavOrderWithWriter failed: %v", err)
	}

	// security was out of order, reliability already correct, the rest
	// have no index and are skipped.
	if !strings.Contains(buf.String(), "Updated nav_order in 1 pillar indexes") {
		t.Errorf("output = %q, want 1 update", buf.String())
	}

	got, _ := os.ReadFile(filepath.Join(root, "security", "index.md"))
	if !strings.Contains(string(got), "nav_order: 2\n") {
		t.Errorf("security index not reordered:\n%s", got)
	}
}

func TestNavCommand_Metadata(t *testing.T) {
	if navOrderCmd.Use != "order" {
		t.Errorf("Use = %q, want %q", navOrderCmd.Use, "order")
	}
	if navOrderCmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}
