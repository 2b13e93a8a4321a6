package render

import (
	"strings"
	"testing"
)

func TestPage(t *testing.T) {
	in := "---\ntitle: SEC01\n---\n\n# Heading\n\nSome *text*.\n"
	out, err := Page([]byte(in))
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	got := string(out)

	if !strings.Contains(got, "<h1") || !strings.Contains(got, "<em>text</em>") {
		t.Errorf("unexpected HTML:\n%s", got)
	}
	if strings.Contains(got, "title: SEC01") {
		t.Error("front matter leaked into output")
	}
}

func TestPage_RawDivsPassThrough(t *testing.T) {
	in := "<div class=\"pillar-header\">\n  <h1>SEC01: Operate</h1>\n</div>\n"
	out, err := Page([]byte(in))
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if !strings.Contains(string(out), `<div class="pillar-header">`) {
		t.Errorf("raw HTML stripped:\n%s", out)
	}
}

func TestPage_GFMTable(t *testing.T) {
	in := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	out, err := Page([]byte(in))
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if !strings.Contains(string(out), "<table>") {
		t.Errorf("GFM table not rendered:\n%s", out)
	}
}
