package site

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/wafctl/internal/catalog"
	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
	"github.com/thoreinstein/wafctl/pkg/fileutil"
)

// Retitle rewrites a question's title everywhere it is quoted: the
// question page, its best-practice pages, and the pillar index. Both
// title spellings are replaced: "ID - Title" (front matter and parent
// references) and "ID: Title" (headings). Returns the files changed.
func Retitle(ctx context.Context, docsDir string, cat *catalog.Catalog, questionID, oldTitle, newTitle string, dryRun bool) ([]string, error) {
	log := logging.FromContext(ctx)

	pillar, _, err := cat.QuestionByID(questionID)
	if err != nil {
		return nil, err
	}

	dir := paths.PillarDir(docsDir, pillar.Slug)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading pillar directory %s", dir)
	}

	replacer := strings.NewReplacer(
		questionID+" - "+oldTitle, questionID+" - "+newTitle,
		questionID+": "+oldTitle, questionID+": "+newTitle,
	)

	var changed []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		// Only the question page, its best-practice pages, and the
		// index quote the title.
		base := strings.TrimSuffix(name, ".md")
		if base != questionID && !strings.HasPrefix(base, questionID+"-BP") && name != "index.md" {
			continue
		}

		path := filepath.Join(dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			return changed, errors.Wrapf(err, "reading %s", path)
		}

		next := replacer.Replace(string(content))
		if next == string(content) {
			log.Debug("no title occurrences", "path", path)
			continue
		}

		if dryRun {
			log.Info("would retitle", "path", path)
			changed = append(changed, path)
			continue
		}

		if err := fileutil.WritePage(path, []byte(next)); err != nil {
			return changed, err
		}
		log.Info("retitled", "path", path)
		changed = append(changed, path)
	}
	return changed, nil
}
