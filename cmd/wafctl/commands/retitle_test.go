package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setRetitleFlags(t *testing.T, from, to string) {
	t.Helper()
	oldFrom, oldTo := retitleFrom, retitleTo
	retitleFrom, retitleTo = from, to
	t.Cleanup(func() {
		retitleFrom, retitleTo = oldFrom, oldTo
	})
}

func TestRetitleCommand(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "security", "SEC02.md"),
		"---\ntitle: SEC02 - How do you manage identities for people and machines?\n---\n\n# SEC02: How do you manage identities for people and machines?\n")
	writeTestFile(t, filepath.Join(root, "security", "index.md"),
		"<h3>SEC02 - How do you manage identities for people and machines?</h3>\n")
	useDocsDir(t, root)
	setRetitleFlags(t,
		"How do you manage identities for people and machines?",
		"How do you manage authentication for people and machines?")

	var buf bytes.Buffer
	if err := runRetitleWithWriter(newTestCmd(t), &buf, []string{"SEC02"}); err != nil {
		t.Fatalf("runRetitleWithWriter failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Retitled SEC02 in 2 files") {
		t.Errorf("output = %q, want 2 files", buf.String())
	}

	q, _ := os.ReadFile(filepath.Join(root, "security", "SEC02.md"))
	if !strings.Contains(string(q), "SEC02 - How do you manage authentication") {
		t.Errorf("front matter not retitled:\n%s", q)
	}
	if !strings.Contains(string(q), "# SEC02: How do you manage authentication") {
		t.Errorf("heading not retitled:\n%s", q)
	}
}

func TestRetitleCommand_SameTitle(t *testing.T) {
	useDocsDir(t, t.TempDir())
	setRetitleFlags(t, "Same title", "Same title")

	var buf bytes.Buffer
	err := runRetitleWithWriter(newTestCmd(t), &buf, []string{"SEC02"})
	if err == nil {
		t.Fatal("expected error when --from equals --to")
	}
}

func TestRetitleCommand_UnknownQuestion(t *testing.T) {
	useDocsDir(t, t.TempDir())
	setRetitleFlags(t, "old", "new")

	var buf bytes.Buffer
	err := runRetitleWithWriter(newTestCmd(t), &buf, []string{"ZZZ99"})
	if err == nil {
		t.Fatal("expected error for unknown question ID")
	}
}
