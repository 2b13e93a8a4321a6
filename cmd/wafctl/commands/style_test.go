package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/wafctl/cmd/wafctl/commands/flags"
)

const plainQuestionPage = `---
layout: default
title: SEC01 - How do you securely operate your workload?
---

# SEC01: How do you securely operate your workload?

To operate your workload securely, you must apply overarching best practices to every area of security.

## Best Practices

### Separate workloads using accounts

Establish common guardrails and isolation between environments.
`

func TestStyleCommand(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "security", "SEC01.md"), plainQuestionPage)
	useDocsDir(t, root)

	var buf bytes.Buffer
	if err := runStyleWithWriter(newTestCmd(t), &buf, []string{"security"}); err != nil {
		t.Fatalf("runStyleWithWriter failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Styled 1 pages") {
		t.Errorf("output = %q, want styled count 1", buf.String())
	}

	got, err := os.ReadFile(filepath.Join(root, "security", "SEC01.md"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(got)
	if !strings.Contains(content, `<div class="pillar-header">`) {
		t.Errorf("page not styled:\n%s", content)
	}
	if !strings.Contains(content, "Separate workloads using accounts") {
		t.Errorf("best practice lost:\n%s", content)
	}
}

func TestStyleCommand_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "security", "SEC01.md"), plainQuestionPage)
	useDocsDir(t, root)

	var buf bytes.Buffer
	if err := runStyleWithWriter(newTestCmd(t), &buf, []string{"security"}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, _ := os.ReadFile(filepath.Join(root, "security", "SEC01.md"))

	buf.Reset()
	if err := runStyleWithWriter(newTestCmd(t), &buf, []string{"security"}); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Styled 0 pages") {
		t.Errorf("second run output = %q, want 0 styled", buf.String())
	}

	second, _ := os.ReadFile(filepath.Join(root, "security", "SEC01.md"))
	if string(first) != string(second) {
		t.Error("second run changed an already-styled page")
	}
}

func TestStyleCommand_DryRun(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "security", "SEC01.md"), plainQuestionPage)
	useDocsDir(t, root)
	flags.SetDryRun(true)

	var buf bytes.Buffer
	if err := runStyleWithWriter(newTestCmd(t), &buf, []string{"security"}); err != nil {
		t.Fatalf("runStyleWithWriter failed: %v", err)
	}

	got, _ := os.ReadFile(filepath.Join(root, "security", "SEC01.md"))
	if string(got) != plainQuestionPage {
		t.Error("dry run modified the page")
	}
	if !strings.Contains(buf.String(), "Styled 1 pages") {
		t.Errorf("output = %q, dry run should still count", buf.String())
	}
}

func TestStyleCommand_UnknownPillar(t *testing.T) {
	useDocsDir(t, t.TempDir())

	var buf bytes.Buffer
	err := runStyleWithWriter(newTestCmd(t), &buf, []string{"nonsense"})
	if err == nil {
		t.Fatal("expected error for unknown pillar slug")
	}
}
