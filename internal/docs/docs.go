// Package docs models the on-disk documentation tree: one directory
// per pillar, an index.md per directory, and one markdown page per
// question or best practice.
package docs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/wafctl/pkg/fileutil"
	"github.com/thoreinstein/wafctl/pkg/frontmatter"
)

// Document is a single markdown page loaded from the tree.
//
// The frontmatter block is kept as raw bytes so transforms that only
// touch the body re-emit metadata they do not understand unchanged.
type Document struct {
	// Path is the absolute file path the document was loaded from.
	Path string

	// ID is the question or best-practice identifier derived from the
	// file name (SEC01, SEC02-BP04), or "" for index pages.
	ID string

	// Frontmatter is the raw frontmatter block, delimiters included.
	// Empty when the page has none.
	Frontmatter []byte

	// Body is everything after the frontmatter block.
	Body []byte
}

// Matter is the front matter the site generator reads. Pages may carry
// more fields; transforms keep the raw block so unknown ones survive.
type Matter struct {
	Title       string `yaml:"title"`
	Layout      string `yaml:"layout,omitempty"`
	Parent      string `yaml:"parent,omitempty"`
	GrandParent string `yaml:"grand_parent,omitempty"`
	NavOrder    int    `yaml:"nav_order,omitempty"`
	HasChildren bool   `yaml:"has_children,omitempty"`
	Permalink   string `yaml:"permalink,omitempty"`
}

// Load reads and splits a page from disk.
func Load(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	doc := &Document{Path: path, ID: idFromFilename(path)}
	doc.Frontmatter, doc.Body, _ = frontmatter.Split(content)
	return doc, nil
}

// Content reassembles the full page bytes.
func (d *Document) Content() []byte {
	return append(append([]byte{}, d.Frontmatter...), d.Body...)
}

// HasFrontmatter reports whether the page carries a frontmatter block.
func (d *Document) HasFrontmatter() bool {
	return len(d.Frontmatter) > 0
}

// Save writes the page back to its path atomically.
func (d *Document) Save() error {
	if err := fileutil.WritePage(d.Path, d.Content()); err != nil {
		return errors.Wrapf(err, "writing %s", d.Path)
	}
	return nil
}

// Meta parses the frontmatter block into matter.
func (d *Document) Meta(matter any) error {
	if !d.HasFrontmatter() {
		return frontmatter.ErrMissingFrontmatter
	}

	inner := bytes.TrimPrefix(d.Frontmatter, []byte("---"))
	inner = bytes.TrimSuffix(bytes.TrimRight(inner, "\r\n"), []byte("---"))
	if err := yaml.Unmarshal(inner, matter); err != nil {
		return errors.Wrapf(err, "parsing frontmatter of %s", d.Path)
	}
	return nil
}

// SetMeta replaces the frontmatter block with a fresh serialization of
// matter. Pages that previously had no block gain one.
func (d *Document) SetMeta(matter any) error {
	out, err := frontmatter.Format(matter, "")
	if err != nil {
		return errors.Wrapf(err, "formatting frontmatter of %s", d.Path)
	}
	d.Frontmatter = out
	return nil
}

// idFromFilename extracts the page identifier from a path like
// docs/security/SEC01.md. Index pages and anything else that does not
// look like an identifier yield "".
func idFromFilename(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".md")
	if !pageIDPattern.MatchString(name) {
		return ""
	}
	return name
}
