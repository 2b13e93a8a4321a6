package docs

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
)

// pageIDPattern matches question and best-practice page names.
var pageIDPattern = regexp.MustCompile(`^[A-Z]+\d+(?:-BP\d+)?$`)

// ScanPillar loads every question and best-practice page in one pillar
// directory, in lexical order. Index pages and non-identifier files are
// skipped. A missing directory is not an error; the caller decides
// whether that matters.
func ScanPillar(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "reading pillar directory %s", dir)
	}

	var docs []*Document
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		if idFromFilename(e.Name()) == "" {
			continue
		}
		doc, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
	return docs, nil
}

// ScanTree loads the question pages of every listed pillar. Pillars
// whose directory does not exist are logged and skipped so a partial
// tree can still be processed.
func ScanTree(ctx context.Context, docsDir string, slugs []string) ([]*Document, error) {
	log := logging.FromContext(ctx)

	var all []*Document
	for _, slug := range slugs {
		dir := paths.PillarDir(docsDir, slug)
		pages, err := ScanPillar(dir)
		if err != nil {
			return nil, err
		}
		if pages == nil {
			if _, statErr := os.Stat(dir); os.IsNotExist(statErr) {
				log.Warn("pillar directory missing, skipping", "pillar", slug, "dir", dir)
				continue
			}
		}
		all = append(all, pages...)
	}
	return all, nil
}
