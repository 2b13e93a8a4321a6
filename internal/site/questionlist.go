package site

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/wafctl/internal/docs"
	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
	"github.com/thoreinstein/wafctl/pkg/fileutil"
)

// questionSectionRe locates the Questions section of a pillar index,
// from its heading through the closing tag of the question-cards div,
// whether it still holds the Liquid loop or an explicit card list. The
// closing tag sits at column 0; nested card divs are indented.
var questionSectionRe = regexp.MustCompile(`(?s)## Questions\s+.*?<div class="question-cards">.*?\n</div>`)

// questionListHeader opens the rebuilt section.
const questionListHeader = `## Questions

The AWS Well-Architected Framework provides a set of questions that allows you to review an existing or proposed architecture. It also provides a set of AWS best practices for each pillar.

<div class="question-cards">
`

// RebuildQuestionList replaces the question-cards block in one
// pillar's index with explicit cards for the question pages found on
// disk, in ID order. Returns false when the index or its Questions
// section is missing; both are defined no-ops.
func RebuildQuestionList(ctx context.Context, docsDir, slug string, dryRun bool) (bool, error) {
	log := logging.FromContext(ctx)

	path := paths.IndexFile(docsDir, slug)
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("pillar index missing, skipping", "pillar", slug, "path", path)
			return false, nil
		}
		return false, errors.Wrapf(err, "reading %s", path)
	}

	loc := questionSectionRe.FindIndex(content)
	if loc == nil {
		log.Warn("no questions section in index, skipping", "pillar", slug, "path", path)
		return false, nil
	}

	pages, err := docs.ScanPillar(paths.PillarDir(docsDir, slug))
	if err != nil {
		return false, err
	}

	var b strings.Builder
	b.WriteString(questionListHeader)
	cards := 0
	for _, page := range pages {
		// Best-practice pages are reachable from their question page,
		// not from the index.
		if strings.Contains(page.ID, "-BP") {
			continue
		}
		cards++
		title := page.ID
		var meta docs.Matter
		if err := page.Meta(&meta); err == nil && meta.Title != "" {
			title = meta.Title
		}
		fmt.Fprintf(&b, "  <div class=\"question-card\">\n    <h3>%s</h3>\n    <a href=\"./%s\">View details →</a>\n  </div>\n", title, page.ID)
	}
	b.WriteString("</div>")

	next := append([]byte{}, content[:loc[0]]...)
	next = append(next, b.String()...)
	next = append(next, content[loc[1]:]...)
	if string(next) == string(content) {
		return false, nil
	}

	if dryRun {
		log.Info("would rebuild question list", "pillar", slug, "questions", cards)
		return true, nil
	}

	if err := fileutil.WritePage(path, next); err != nil {
		return false, err
	}
	log.Info("rebuilt question list", "pillar", slug, "questions", cards)
	return true, nil
}
