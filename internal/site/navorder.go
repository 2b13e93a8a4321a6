// Package site holds maintenance operations that edit pages already
// on disk: navigation reordering, question-card lists, and title
// rewrites.
package site

import (
	"context"
	"os"
	"regexp"
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
	"github.com/thoreinstein/wafctl/pkg/fileutil"
)

// DefaultPillarOrder is the navigation ordering applied when none is
// configured. Slot 1 is the site's landing page.
var DefaultPillarOrder = map[string]int{
	"security":               2,
	"reliability":            3,
	"cost-optimization":      4,
	"performance-efficiency": 5,
	"operational-excellence": 6,
	"sustainability":         7,
}

// navOrderLineRe matches the nav_order line of a front-matter block.
var navOrderLineRe = regexp.MustCompile(`(?m)^nav_order:.*$`)

// SetNavOrder rewrites the nav_order field in each pillar's index page
// per the given ordering. Only the first nav_order line is touched.
// Pillars whose index is missing are logged and skipped; an index
// without a nav_order line is left untouched.
func SetNavOrder(ctx context.Context, docsDir string, order map[string]int, dryRun bool) (updated int, err error) {
	log := logging.FromContext(ctx)

	for slug, navOrder := range order {
		path := paths.IndexFile(docsDir, slug)
		content, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				log.Warn("pillar index missing, skipping", "pillar", slug, "path", path)
				continue
			}
			return updated, errors.Wrapf(err, "reading %s", path)
		}

		loc := navOrderLineRe.FindIndex(content)
		if loc == nil {
			log.Debug("no nav_order line", "path", path)
			continue
		}

		line := "nav_order: " + strconv.Itoa(navOrder)
		if string(content[loc[0]:loc[1]]) == line {
			continue
		}
		next := append([]byte{}, content[:loc[0]]...)
		next = append(next, line...)
		next = append(next, content[loc[1]:]...)

		if dryRun {
			log.Info("would set nav_order", "pillar", slug, "nav_order", navOrder)
			updated++
			continue
		}

		if err := fileutil.WritePage(path, next); err != nil {
			return updated, err
		}
		log.Info("set nav_order", "pillar", slug, "nav_order", navOrder)
		updated++
	}
	return updated, nil
}
