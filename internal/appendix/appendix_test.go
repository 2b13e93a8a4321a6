package appendix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const appendixHTML = `<!DOCTYPE html>
<html>
<body>
  <h1>Appendix: Questions and best practices</h1>
  <h2>Operational excellence pillar</h2>
  <div class="variablelist">
    <dl>
      <dt>OPS01: How do you determine what your priorities are?</dt>
      <dd>Details.</dd>
      <dt>OPS02: How do you structure your organization to support your business outcomes?</dt>
      <dd>Details.</dd>
    </dl>
  </div>
  <h2>Security pillar</h2>
  <p>Intro text.</p>
  <div class="variablelist">
    <dl>
      <dt>SEC01: How do you securely operate your workload?</dt>
      <dd>Details.</dd>
    </dl>
  </div>
  <h2>Resources</h2>
  <div class="variablelist">
    <dl>
      <dt>NOT01: A list after a non-pillar heading</dt>
    </dl>
  </div>
</body>
</html>`

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader(appendixHTML))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("pillars = %d, want 2: %v", len(got), got)
	}

	ops := got["Operational excellence"]
	if len(ops) != 2 {
		t.Fatalf("OPS questions = %d, want 2", len(ops))
	}
	if ops[0].ID != "OPS01" || ops[0].Title != "How do you determine what your priorities are?" {
		t.Errorf("ops[0] = %+v", ops[0])
	}

	sec := got["Security"]
	if len(sec) != 1 || sec[0].ID != "SEC01" {
		t.Errorf("sec = %+v", sec)
	}
}

func TestParse_IgnoresListsOutsideVariablelist(t *testing.T) {
	in := `<h2>Security pillar</h2>
<dl><dt>SEC01: Not inside a variablelist div</dt></dl>
<div class="variablelist"><dl><dt>SEC02: Inside one</dt></dl></div>`

	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	sec := got["Security"]
	if len(sec) != 1 || sec[0].ID != "SEC02" {
		t.Errorf("sec = %+v", sec)
	}
}

func TestParse_NoPillars(t *testing.T) {
	if _, err := Parse(strings.NewReader("<html><body><p>nothing</p></body></html>")); err == nil {
		t.Error("expected error for page without pillar sections")
	}
}

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); !strings.HasPrefix(ua, "wafctl") {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Write([]byte(appendixHTML))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(got["Operational excellence"]) != 2 {
		t.Errorf("questions = %+v", got)
	}
}

func TestClient_FetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("expected error for 404 response")
	}

	srv.Close()
	if _, err := NewClient(srv.URL).Fetch(context.Background()); err == nil {
		t.Error("expected error for connection failure")
	}
}
