// Package appendix fetches and parses the published framework
// appendix, the authoritative list of review questions per pillar.
package appendix

import (
	"context"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/net/html"

	"github.com/thoreinstein/wafctl/internal/catalog"
)

const (
	// maxResponseSize caps how much of the appendix page is read.
	maxResponseSize = 8 << 20

	defaultTimeout = 30 * time.Second

	userAgent = "wafctl (+https://github.com/thoreinstein/wafctl)"
)

// questionRe extracts "SEC01: How do you ..." definition terms.
var questionRe = regexp.MustCompile(`^([A-Z]+\d+):\s+(.*)$`)

// Client fetches the appendix page.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient returns a client for the appendix at url.
func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		url:        url,
	}
}

// Fetch downloads and parses the appendix. The result maps published
// pillar names ("Operational excellence") to their questions in
// document order.
func (c *Client) Fetch(ctx context.Context) (map[string][]catalog.Question, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building appendix request")
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching %s", c.url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf("fetching %s: unexpected status %s", c.url, resp.Status)
	}

	questions, err := Parse(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", c.url)
	}
	return questions, nil
}

// Parse reads the appendix HTML. Pillar sections are h2 headings whose
// text contains "pillar"; their questions are the <dt> entries of the
// variablelist definition lists that follow, up to the next h2.
func Parse(r io.Reader) (map[string][]catalog.Question, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing appendix HTML")
	}

	questions := make(map[string][]catalog.Question)
	var currentPillar string

	var walk func(n *html.Node, inVarList bool)
	walk = func(n *html.Node, inVarList bool) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "h2":
				currentPillar = pillarName(nodeText(n))
				if currentPillar != "" {
					// Mark the pillar even if its list turns out empty.
					if _, ok := questions[currentPillar]; !ok {
						questions[currentPillar] = nil
					}
				}
			case "div":
				if hasClass(n, "variablelist") {
					inVarList = true
				}
			case "dt":
				if currentPillar == "" || !inVarList {
					break
				}
				if m := questionRe.FindStringSubmatch(strings.TrimSpace(nodeText(n))); m != nil {
					questions[currentPillar] = append(questions[currentPillar], catalog.Question{
						ID:    m[1],
						Title: m[2],
					})
				}
				return // no nested questions inside a dt
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, inVarList)
		}
	}
	walk(root, false)

	if len(questions) == 0 {
		return nil, errors.New("no pillar sections found in appendix")
	}
	return questions, nil
}

// pillarName extracts the pillar name from a heading like
// "Security pillar". Headings without "pillar" are not sections.
func pillarName(heading string) string {
	heading = strings.TrimSpace(heading)
	idx := strings.Index(strings.ToLower(heading), " pillar")
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(heading[:idx])
}

// hasClass reports whether the element lists the given class.
func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// nodeText concatenates the text content of a node's subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
