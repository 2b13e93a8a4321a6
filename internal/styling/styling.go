// Package styling rewrites plain question pages into the styled
// div-wrapped page format the site theme expects.
//
// The transform is pure text manipulation: front matter is carried
// through byte-for-byte, known sections are rewritten in place, and
// everything it does not recognize is left untouched. Inputs the
// transform cannot handle (no front matter, no question heading,
// already styled) pass through unchanged rather than erroring.
package styling

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/thoreinstein/wafctl/pkg/frontmatter"
)

// defaultDescription is used when the page has no paragraph between
// the question heading and the first section.
const defaultDescription = "*This page contains guidance for addressing this question from the AWS Well-Architected Framework.*"

// styledMarker identifies a page that already went through the
// transform. Its presence makes Apply a no-op, so restyling a tree is
// idempotent.
const styledMarker = `<div class="pillar-header">`

var (
	titleRe = regexp.MustCompile(`(?m)^# ([A-Z]+\d+): (.*)$`)

	// headingDescRe captures the heading line plus the first paragraph
	// after it, both removed together when present.
	headingDescRe = regexp.MustCompile(`(?s)(?m)^# [A-Z]+\d+: [^\n]*\n\n(.*?)\n\n`)

	// headingOnlyRe removes a bare heading with no paragraph after it.
	headingOnlyRe = regexp.MustCompile(`(?m)^# [A-Z]+\d+: [^\n]*\n\n?`)
)

// Apply rewrites one page into the styled format. It returns the
// resulting content and whether anything changed.
func Apply(content []byte) ([]byte, bool) {
	matter, body, ok := frontmatter.Split(content)
	if !ok {
		return content, false
	}

	text := string(body)
	if strings.Contains(text, styledMarker) {
		return content, false
	}

	title := titleRe.FindStringSubmatch(text)
	if title == nil {
		return content, false
	}
	questionID, questionTitle := title[1], title[2]

	description := defaultDescription
	if loc := headingDescRe.FindStringSubmatchIndex(text); loc != nil {
		description = text[loc[2]:loc[3]]
		text = text[:loc[0]] + text[loc[1]:]
	} else if loc := headingOnlyRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]] + text[loc[1]:]
	}

	header := fmt.Sprintf("<div class=\"pillar-header\">\n  <h1>%s: %s</h1>\n  <p>%s</p>\n</div>\n\n",
		questionID, questionTitle, description)

	for _, s := range sectionStylers {
		text = restyleSection(text, s)
	}

	out := append(append([]byte{}, matter...), []byte(header+text)...)
	return out, string(out) != string(content)
}

// sectionStyler rewrites one "## Heading" section. restyle receives
// the section body (between the heading's blank line and the next
// "##" heading or end of document) and returns the full replacement
// including whatever heading markup the styled form uses.
type sectionStyler struct {
	heading string
	restyle func(section string) string
}

// sectionStylers is the fixed vocabulary of recognized sections, in
// rewrite order. Sections absent from a page are skipped.
var sectionStylers = []sectionStyler{
	{heading: "Best Practices", restyle: restyleBestPractices},
	{heading: "Implementation Guidance", restyle: restyleImplementation},
	{heading: "AWS Services to Consider", restyle: restyleServices},
	{heading: "Related Resources", restyle: restyleResources},
}

// restyleSection locates the styler's section and splices in its
// replacement. Missing sections leave text unchanged.
func restyleSection(text string, s sectionStyler) string {
	marker := "## " + s.heading + "\n\n"
	start := strings.Index(text, marker)
	if start < 0 {
		return text
	}

	bodyStart := start + len(marker)
	bodyEnd := len(text)
	if idx := strings.Index(text[bodyStart:], "\n##"); idx >= 0 {
		bodyEnd = bodyStart + idx
	}

	return text[:start] + s.restyle(text[bodyStart:bodyEnd]) + text[bodyEnd:]
}

// splitItems cuts a section body into chunks starting at each match of
// headerRe (anchored to line starts). Text before the first header is
// discarded, matching how the extraction patterns behave.
func splitItems(section string, headerRe *regexp.Regexp) []string {
	locs := headerRe.FindAllStringIndex(section, -1)
	if locs == nil {
		return nil
	}

	items := make([]string, 0, len(locs))
	for i, loc := range locs {
		end := len(section)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		items = append(items, strings.TrimRight(section[loc[0]:end], "\n"))
	}
	return items
}

var (
	practiceHeaderRe = regexp.MustCompile(`(?m)^### `)
	practiceRe       = regexp.MustCompile(`(?s)^### ([^\n]*)\n(.*)$`)
)

func restyleBestPractices(section string) string {
	var b strings.Builder
	b.WriteString("## Best Practices\n\n")

	items := splitItems(section, practiceHeaderRe)
	matched := false
	for _, item := range items {
		m := practiceRe.FindStringSubmatch(item)
		if m == nil {
			continue
		}
		matched = true
		fmt.Fprintf(&b, "<div class=\"best-practice\">\n  <h4>%s</h4>\n  <p>%s</p>\n</div>\n\n",
			m[1], strings.TrimSpace(m[2]))
	}
	if !matched {
		fmt.Fprintf(&b, "<div class=\"best-practice\">\n  <h4>Best Practice</h4>\n  <p>%s</p>\n</div>\n\n",
			strings.TrimSpace(section))
	}
	return b.String()
}

var (
	stepHeaderRe = regexp.MustCompile(`(?m)^\d+\.\s`)
	stepTitledRe = regexp.MustCompile(`(?s)^\d+\.\s+\*\*([^*]*)\*\*:(.*)$`)
	stepPlainRe  = regexp.MustCompile(`^\d+\.\s+`)
)

func restyleImplementation(section string) string {
	var b strings.Builder
	b.WriteString("## Implementation Guidance\n\n")

	items := splitItems(section, stepHeaderRe)

	// Strict pass: numbered items with a bold title and colon.
	n := 0
	for _, item := range items {
		if m := stepTitledRe.FindStringSubmatch(item); m != nil {
			n++
			fmt.Fprintf(&b, "<div class=\"implementation-step\">\n  <h4>%d. %s</h4>\n  <p>%s</p>\n</div>\n\n",
				n, m[1], strings.TrimSpace(m[2]))
		}
	}
	if n > 0 {
		return b.String()
	}

	// Loose pass: any numbered items.
	for i, item := range items {
		text := stepPlainRe.ReplaceAllString(strings.TrimSpace(item), "")
		fmt.Fprintf(&b, "<div class=\"implementation-step\">\n  <h4>Step %d</h4>\n  <p>%s</p>\n</div>\n\n",
			i+1, text)
	}
	if len(items) > 0 {
		return b.String()
	}

	fmt.Fprintf(&b, "<div class=\"implementation-step\">\n  <h4>Implementation Guidance</h4>\n  <p>%s</p>\n</div>\n\n",
		strings.TrimSpace(section))
	return b.String()
}

var (
	bulletHeaderRe  = regexp.MustCompile(`(?m)^- `)
	serviceTitledRe = regexp.MustCompile(`(?s)^- \*\*([^*]*)\*\* - (.*)$`)
	bulletPlainRe   = regexp.MustCompile(`(?s)^- (.*)$`)
)

func writeService(b *strings.Builder, name, desc string) {
	fmt.Fprintf(b, "<div class=\"aws-service\">\n  <div class=\"aws-service-content\">\n    <h4>%s</h4>\n    <p>%s</p>\n  </div>\n</div>\n\n",
		name, desc)
}

func restyleServices(section string) string {
	var b strings.Builder
	b.WriteString("## AWS Services to Consider\n\n")

	items := splitItems(section, bulletHeaderRe)

	matched := false
	for _, item := range items {
		if m := serviceTitledRe.FindStringSubmatch(item); m != nil {
			matched = true
			writeService(&b, m[1], strings.TrimSpace(m[2]))
		}
	}
	if matched {
		return b.String()
	}

	for _, item := range items {
		if m := bulletPlainRe.FindStringSubmatch(item); m != nil {
			writeService(&b, strings.TrimSpace(m[1]), "AWS service for this question.")
		}
	}
	if len(items) > 0 {
		return b.String()
	}

	writeService(&b, "AWS Services", "Add relevant AWS services for this question.")
	return b.String()
}

var resourceLinkRe = regexp.MustCompile(`- \[(.*?)\]\((.*?)\)`)

func restyleResources(section string) string {
	var b strings.Builder
	b.WriteString("<div class=\"related-resources\">\n  <h2>Related Resources</h2>\n  <ul>\n")

	links := resourceLinkRe.FindAllStringSubmatch(section, -1)
	switch {
	case len(links) > 0:
		for _, m := range links {
			fmt.Fprintf(&b, "    <li><a href=\"%s\">%s</a></li>\n", m[2], m[1])
		}
	default:
		items := splitItems(section, bulletHeaderRe)
		if len(items) == 0 {
			b.WriteString("    <li>Add related resources for this question.</li>\n")
			break
		}
		for _, item := range items {
			if m := bulletPlainRe.FindStringSubmatch(item); m != nil {
				fmt.Fprintf(&b, "    <li>%s</li>\n", strings.TrimSpace(m[1]))
			}
		}
	}

	b.WriteString("  </ul>\n</div>")
	return b.String()
}
