package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/wafctl/internal/catalog"
	"github.com/thoreinstein/wafctl/internal/logging"
)

func testCtx(t *testing.T) context.Context {
	return logging.NewContext(context.Background(), logging.ForTest(t))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const indexWithLiquid = `---
title: Security
layout: default
nav_order: 3
has_children: true
permalink: /docs/security
---

<div class="pillar-header">
  <h1>Security Pillar</h1>
</div>

## Questions

The AWS Well-Architected Framework provides a set of questions that allows you to review an existing or proposed architecture. It also provides a set of AWS best practices for each pillar.

<div class="question-cards">
  {% for child in site.pages %}
    {% if child.parent == page.title %}
      <div class="question-card">
        <h3>{{ child.title }}</h3>
        <a href="{{ child.url | absolute_url }}">View details →</a>
      </div>
    {% endif %}
  {% endfor %}
</div>

## AWS Services for Security

<div class="aws-service">
  <div class="aws-service-content">
    <h4>Amazon GuardDuty</h4>
    <p>Threat detection.</p>
  </div>
</div>
`

func TestSetNavOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "security", "index.md"), indexWithLiquid)

	updated, err := SetNavOrder(testCtx(t), root, map[string]int{"security": 2}, false)
	if err != nil {
		t.Fatalf("SetNavOrder failed: %v", err)
	}
	if updated != 1 {
		t.Errorf("updated = %d, want 1", updated)
	}

	got, _ := os.ReadFile(filepath.Join(root, "security", "index.md"))
	if !strings.Contains(string(got), "nav_order: 2\n") {
		t.Errorf("nav_order not rewritten:\n%s", got)
	}
	if strings.Contains(string(got), "nav_order: 3") {
		t.Errorf("old nav_order survived:\n%s", got)
	}
}

func TestSetNavOrder_AlreadyCorrect(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "security", "index.md"), indexWithLiquid)

	updated, err := SetNavOrder(testCtx(t), root, map[string]int{"security": 3}, false)
	if err != nil {
		t.Fatalf("SetNavOrder failed: %v", err)
	}
	if updated != 0 {
		t.Errorf("updated = %d, want 0", updated)
	}
}

func TestSetNavOrder_MissingIndex(t *testing.T) {
	updated, err := SetNavOrder(testCtx(t), t.TempDir(), DefaultPillarOrder, false)
	if err != nil {
		t.Fatalf("SetNavOrder failed: %v", err)
	}
	if updated != 0 {
		t.Errorf("updated = %d, want 0", updated)
	}
}

func TestSetNavOrder_DryRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "security", "index.md"), indexWithLiquid)

	updated, err := SetNavOrder(testCtx(t), root, map[string]int{"security": 5}, true)
	if err != nil {
		t.Fatalf("SetNavOrder failed: %v", err)
	}
	if updated != 1 {
		t.Errorf("updated = %d, want 1", updated)
	}

	got, _ := os.ReadFile(filepath.Join(root, "security", "index.md"))
	if !strings.Contains(string(got), "nav_order: 3\n") {
		t.Errorf("dry run modified the file:\n%s", got)
	}
}

func TestRebuildQuestionList(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "security", "index.md"), indexWithLiquid)
	writeFile(t, filepath.Join(root, "security", "SEC01.md"),
		"---\ntitle: SEC01 - How do you securely operate your workload?\n---\n\nBody.\n")
	writeFile(t, filepath.Join(root, "security", "SEC02.md"),
		"---\ntitle: SEC02 - How do you manage identities for people and machines?\n---\n\nBody.\n")
	writeFile(t, filepath.Join(root, "security", "SEC02-BP01.md"),
		"---\ntitle: SEC02-BP01 - Use strong sign-in mechanisms\n---\n\nBody.\n")

	changed, err := RebuildQuestionList(testCtx(t), root, "security", false)
	if err != nil {
		t.Fatalf("RebuildQuestionList failed: %v", err)
	}
	if !changed {
		t.Fatal("changed = false")
	}

	got, _ := os.ReadFile(filepath.Join(root, "security", "index.md"))
	content := string(got)

	checks := []string{
		"<h3>SEC01 - How do you securely operate your workload?</h3>",
		`<a href="./SEC01">View details →</a>`,
		"<h3>SEC02 - How do you manage identities for people and machines?</h3>",
	}
	for _, want := range checks {
		if !strings.Contains(content, want) {
			t.Errorf("index missing %q\n\n%s", want, content)
		}
	}
	if strings.Contains(content, "{% for child") {
		t.Error("Liquid loop survived the rebuild")
	}
	if strings.Contains(content, "SEC02-BP01") {
		t.Error("best-practice page got a question card")
	}
	// Sections around the question list are untouched.
	if !strings.Contains(content, "## AWS Services for Security") {
		t.Error("following section lost")
	}
	if !strings.Contains(content, "nav_order: 3") {
		t.Error("front matter disturbed")
	}
}

func TestRebuildQuestionList_NoSection(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "security", "index.md"), "---\ntitle: Security\n---\n\nNo questions block.\n")

	changed, err := RebuildQuestionList(testCtx(t), root, "security", false)
	if err != nil {
		t.Fatalf("RebuildQuestionList failed: %v", err)
	}
	if changed {
		t.Error("changed = true for index without questions section")
	}
}

func TestRebuildQuestionList_MissingIndex(t *testing.T) {
	changed, err := RebuildQuestionList(testCtx(t), t.TempDir(), "security", false)
	if err != nil {
		t.Fatalf("RebuildQuestionList failed: %v", err)
	}
	if changed {
		t.Error("changed = true for missing index")
	}
}

func TestRetitle(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "security", "SEC02.md"),
		"---\ntitle: SEC02 - How do you manage identities for people and machines?\n---\n\n# SEC02: How do you manage identities for people and machines?\n")
	writeFile(t, filepath.Join(root, "security", "SEC02-BP01.md"),
		"---\nparent: SEC02 - How do you manage identities for people and machines?\n---\n\nBody.\n")
	writeFile(t, filepath.Join(root, "security", "SEC01.md"),
		"---\ntitle: SEC01 - How do you securely operate your workload?\n---\n\nBody.\n")
	writeFile(t, filepath.Join(root, "security", "index.md"),
		"<h3>SEC02 - How do you manage identities for people and machines?</h3>\n")

	changed, err := Retitle(testCtx(t), root, catalog.Default(), "SEC02",
		"How do you manage identities for people and machines?",
		"How do you manage authentication for people and machines?", false)
	if err != nil {
		t.Fatalf("Retitle failed: %v", err)
	}
	if len(changed) != 3 {
		t.Errorf("changed = %v, want 3 files", changed)
	}

	q, _ := os.ReadFile(filepath.Join(root, "security", "SEC02.md"))
	if !strings.Contains(string(q), "title: SEC02 - How do you manage authentication for people and machines?") {
		t.Errorf("front matter title not rewritten:\n%s", q)
	}
	if !strings.Contains(string(q), "# SEC02: How do you manage authentication for people and machines?") {
		t.Errorf("heading not rewritten:\n%s", q)
	}

	bp, _ := os.ReadFile(filepath.Join(root, "security", "SEC02-BP01.md"))
	if !strings.Contains(string(bp), "parent: SEC02 - How do you manage authentication") {
		t.Errorf("best practice parent not rewritten:\n%s", bp)
	}

	other, _ := os.ReadFile(filepath.Join(root, "security", "SEC01.md"))
	if !strings.Contains(string(other), "How do you securely operate your workload?") {
		t.Errorf("unrelated page modified:\n%s", other)
	}
}

func TestRetitle_UnknownQuestion(t *testing.T) {
	if _, err := Retitle(testCtx(t), t.TempDir(), catalog.Default(), "SEC99", "a", "b", false); err == nil {
		t.Error("expected error for unknown question")
	}
}

func TestCompare(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "security", "SEC01.md"), "# SEC01\n")
	writeFile(t, filepath.Join(root, "security", "SEC03.md"), "# SEC03\n")
	writeFile(t, filepath.Join(root, "security", "SEC01-BP05.md"), "# BP\n")

	cat := &catalog.Catalog{
		Pillars: []catalog.Pillar{
			{Name: "Security", Slug: "security", Abbr: "SEC"},
			{Name: "Reliability", Slug: "reliability", Abbr: "REL"},
		},
	}
	published := map[string][]catalog.Question{
		"Security": {
			{ID: "SEC01", Title: "Operate"},
			{ID: "SEC02", Title: "Identities"},
		},
		"Reliability": {
			{ID: "REL01", Title: "Quotas"},
		},
	}

	reports := Compare(testCtx(t), root, cat, published)
	if len(reports) != 2 {
		t.Fatalf("reports = %d, want 2", len(reports))
	}

	sec := reports[0]
	if sec.Clean() {
		t.Error("security reported clean")
	}
	if sec.LocalCount != 2 {
		t.Errorf("LocalCount = %d, want 2 (BP pages excluded)", sec.LocalCount)
	}
	if len(sec.Missing) != 1 || sec.Missing[0].ID != "SEC02" {
		t.Errorf("Missing = %+v", sec.Missing)
	}
	if len(sec.Extra) != 1 || sec.Extra[0] != "SEC03" {
		t.Errorf("Extra = %+v", sec.Extra)
	}

	rel := reports[1]
	if !rel.DirMissing {
		t.Error("reliability DirMissing = false")
	}
	if rel.Clean() {
		t.Error("reliability reported clean")
	}
}
