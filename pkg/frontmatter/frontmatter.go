// Package frontmatter provides utilities for parsing and formatting
// YAML frontmatter in markdown pages.
package frontmatter

import (
	"bytes"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingFrontmatter is returned by Parse when no frontmatter block is found.
var ErrMissingFrontmatter = errors.New("missing frontmatter")

// delimiter is the frontmatter fence. The block must start at byte 0 of
// the document or the document is not considered a frontmatter page.
const delimiter = "---"

// Split separates a document into its raw frontmatter block (delimiters
// included, trailing newline included) and the body that follows.
//
// The raw block is preserved byte-for-byte so transforms can re-emit a
// page without disturbing metadata they do not understand. If the
// document does not begin with a frontmatter fence, ok is false and
// body is the whole input.
func Split(content []byte) (raw, body []byte, ok bool) {
	if !bytes.HasPrefix(content, []byte(delimiter+"\n")) && !bytes.HasPrefix(content, []byte(delimiter+"\r\n")) {
		return nil, content, false
	}

	// Find the closing fence on its own line after the opening one.
	offset := len(delimiter)
	for _, marker := range []string{"\n" + delimiter + "\n", "\n" + delimiter + "\r\n", "\r\n" + delimiter + "\r\n", "\r\n" + delimiter + "\n"} {
		if idx := bytes.Index(content[offset:], []byte(marker)); idx >= 0 {
			end := offset + idx + len(marker)
			return content[:end], content[end:], true
		}
	}

	// Closing fence at end of input without trailing newline.
	for _, marker := range []string{"\n" + delimiter, "\r\n" + delimiter} {
		if bytes.HasSuffix(content, []byte(marker)) {
			return content, nil, true
		}
	}

	return nil, content, false
}

// Parse extracts the frontmatter block into matter and returns the body.
// Returns ErrMissingFrontmatter when the document has no block.
func Parse[T any](content []byte, matter *T) (body []byte, err error) {
	raw, body, ok := Split(content)
	if !ok {
		return nil, ErrMissingFrontmatter
	}

	inner := bytes.TrimPrefix(raw, []byte(delimiter))
	inner = bytes.TrimSuffix(bytes.TrimRight(inner, "\r\n"), []byte(delimiter))

	if err := yaml.Unmarshal(inner, matter); err != nil {
		return nil, err
	}
	return body, nil
}

// Format formats content with YAML frontmatter.
// The matter struct is serialized to YAML and wrapped in "---" delimiters,
// followed by the body content.
func Format(matter any, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(matter); err != nil {
		return nil, err
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}

	return buf.Bytes(), nil
}
