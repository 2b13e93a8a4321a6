// Package links holds the pure text rewrites behind `wafctl fix`.
//
// Each rewriter takes page content and returns the rewritten content
// plus whether anything changed. Walking the tree and writing files is
// the command's job; unmatched patterns are defined no-ops.
package links

import (
	"fmt"
	"regexp"
	"strings"
)

// extensionRe matches in-page links written without an extension:
// href="./SEC01", href="./SEC02-BP04".
var extensionRe = regexp.MustCompile(`href="\./([A-Z]+\d+(?:-BP\d+)?)"`)

// AddExtensions rewrites href="./SEC01" into href="SEC01.html". The
// static site serves rendered pages, so extensionless source links 404.
func AddExtensions(content string) (string, bool) {
	out := extensionRe.ReplaceAllString(content, `href="$1.html"`)
	return out, out != content
}

// MakeRelative rewrites href="SEC01.html" into href="./SEC01.html" for
// the given pillar abbreviation. Index pages link both questions and
// best practices; question pages only link their own best-practice
// pages, so indexPage widens the pattern.
func MakeRelative(content, abbr string, indexPage bool) (string, bool) {
	var pattern string
	if indexPage {
		pattern = fmt.Sprintf(`href="(%s\d+(?:-BP\d+)?\.html)"`, regexp.QuoteMeta(abbr))
	} else {
		pattern = fmt.Sprintf(`href="(%s\d+-BP\d+\.html)"`, regexp.QuoteMeta(abbr))
	}

	out := regexp.MustCompile(pattern).ReplaceAllString(content, `href="./$1"`)
	return out, out != content
}

// ScopeToPillar rewrites href="./SEC01.html" into
// href="./security/SEC01.html" so a page outside the pillar directory
// can reach its pages.
func ScopeToPillar(content, abbr, slug string) (string, bool) {
	pattern := fmt.Sprintf(`href="\./(%s\d+(?:-BP\d+)?\.html)"`, regexp.QuoteMeta(abbr))
	out := regexp.MustCompile(pattern).ReplaceAllString(content, fmt.Sprintf(`href="./%s/$1"`, slug))
	return out, out != content
}

// templateResidueRe matches the broken Liquid fragment an early page
// template left behind in pillar indexes.
var templateResidueRe = regexp.MustCompile(`</div>\s+\{% endif %\}\s+\{% endfor %\}\s+</div>`)

// StripTemplateResidue collapses leftover Liquid template fragments
// down to the closing div they orphaned.
func StripTemplateResidue(content string) (string, bool) {
	out := templateResidueRe.ReplaceAllString(content, "</div>")
	return out, out != content
}

// FillTitlePlaceholder replaces the literal {title} placeholder in the
// services heading with the pillar's display title.
func FillTitlePlaceholder(content, pillarTitle string) (string, bool) {
	out := strings.ReplaceAll(content,
		"## AWS Services for {title}",
		"## AWS Services for "+pillarTitle)
	return out, out != content
}
