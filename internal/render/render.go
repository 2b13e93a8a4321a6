// Package render converts Markdown pages to HTML for local preview.
package render

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/thoreinstein/wafctl/pkg/frontmatter"
)

// engine is configured once: GFM because the pages use tables and
// autolinks, unsafe rendering because styled pages embed raw divs.
var engine = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Page renders a page's body to HTML. A front-matter block, when
// present, is stripped rather than rendered.
func Page(content []byte) ([]byte, error) {
	_, body, _ := frontmatter.Split(content)

	var buf bytes.Buffer
	if err := engine.Convert(body, &buf); err != nil {
		return nil, errors.Wrap(err, "rendering markdown")
	}
	return buf.Bytes(), nil
}
