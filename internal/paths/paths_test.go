package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Error(err)
		}
	})
}

func TestResolveDocsDir_Explicit(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveDocsDir(dir)
	if err != nil {
		t.Fatalf("ResolveDocsDir(%q) failed: %v", dir, err)
	}
	if got != dir {
		t.Errorf("ResolveDocsDir = %q, want %q", got, dir)
	}
}

func TestResolveDocsDir_Default(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)
	if err := os.Mkdir("docs", 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ResolveDocsDir("")
	if err != nil {
		t.Fatalf("ResolveDocsDir failed: %v", err)
	}
	if filepath.Base(got) != "docs" {
		t.Errorf("ResolveDocsDir = %q, want a docs directory", got)
	}
}

func TestResolveDocsDir_Missing(t *testing.T) {
	_, err := ResolveDocsDir(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrDocsDirNotFound) {
		t.Errorf("err = %v, want ErrDocsDirNotFound", err)
	}
}

func TestResolveDocsDir_File(t *testing.T) {
	f := filepath.Join(t.TempDir(), "docs")
	if err := os.WriteFile(f, []byte("not a dir"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ResolveDocsDir(f)
	if !errors.Is(err, ErrDocsDirNotFound) {
		t.Errorf("err = %v, want ErrDocsDirNotFound", err)
	}
}

func TestPathHelpers(t *testing.T) {
	docs := filepath.Join("site", "docs")

	if got := PillarDir(docs, "security"); got != filepath.Join(docs, "security") {
		t.Errorf("PillarDir = %q", got)
	}
	if got := IndexFile(docs, "security"); got != filepath.Join(docs, "security", "index.md") {
		t.Errorf("IndexFile = %q", got)
	}
	if got := QuestionFile(docs, "security", "SEC01"); got != filepath.Join(docs, "security", "SEC01.md") {
		t.Errorf("QuestionFile = %q", got)
	}
}
