// Package generate writes the scaffolded documentation pages: one
// page per question, one per best practice, and a styled index per
// pillar.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/wafctl/internal/catalog"
	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
	"github.com/thoreinstein/wafctl/pkg/fileutil"
)

// Generator writes pages for one docs tree.
type Generator struct {
	catalog *catalog.Catalog
	docsDir string

	// SkipExisting leaves files that already exist untouched instead
	// of overwriting them.
	SkipExisting bool

	// DryRun logs what would be written without touching the tree.
	DryRun bool
}

// New returns a generator rooted at docsDir.
func New(cat *catalog.Catalog, docsDir string) *Generator {
	return &Generator{catalog: cat, docsDir: docsDir}
}

// Result counts what one generation pass did.
type Result struct {
	Written int
	Skipped int
}

// questionPage is the template payload for question scaffolds.
type questionPage struct {
	ID            string
	Title         string
	Pillar        string
	PillarDocSlug string
	NavOrder      int
}

// practicePage is the template payload for best-practice scaffolds.
type practicePage struct {
	ID              string
	Title           string
	Description     string
	NavOrder        int
	Pillar          string
	PillarDocSlug   string
	QuestionID      string
	QuestionTitle   string
	QuestionDocSlug string
}

// indexPage is the template payload for pillar indexes.
type indexPage struct {
	Title       string
	Slug        string
	NavOrder    int
	Description string
	KeyAreas    []keyArea
	Services    []catalog.Service
	Resources   []catalog.Resource
}

type keyArea struct {
	Name   string
	Detail string
}

// QuestionPages writes a scaffold page for every question of every
// pillar. With styled set, the div-wrapped template is used; otherwise
// the plain Markdown one.
func (g *Generator) QuestionPages(ctx context.Context, styled bool) (*Result, error) {
	tmpl := questionPlainTemplate
	if styled {
		tmpl = questionStyledTemplate
	}

	result := &Result{}
	for _, p := range g.catalog.Pillars {
		for i, q := range p.Questions {
			page := questionPage{
				ID:            q.ID,
				Title:         q.Title,
				Pillar:        p.Name,
				PillarDocSlug: docSlug(p.Slug),
				NavOrder:      i + 1,
			}
			path := paths.QuestionFile(g.docsDir, p.Slug, q.ID)
			if err := g.writePage(ctx, path, tmpl, page, result); err != nil {
				return result, err
			}
		}
	}
	return result, nil
}

// PracticePages writes a page for every best practice in the catalog,
// nested under its parent question.
func (g *Generator) PracticePages(ctx context.Context) (*Result, error) {
	result := &Result{}
	for _, p := range g.catalog.Pillars {
		for _, q := range p.Questions {
			for _, bp := range g.catalog.PracticesFor(q.ID) {
				page := practicePage{
					ID:              bp.ID,
					Title:           bp.Title,
					Description:     bp.Description,
					NavOrder:        bp.NavOrder,
					Pillar:          p.Name,
					PillarDocSlug:   docSlug(p.Slug),
					QuestionID:      q.ID,
					QuestionTitle:   q.Title,
					QuestionDocSlug: questionDocSlug(p.Abbr, q.ID),
				}
				path := paths.QuestionFile(g.docsDir, p.Slug, bp.ID)
				if err := g.writePage(ctx, path, practiceTemplate, page, result); err != nil {
					return result, err
				}
			}
		}
	}
	return result, nil
}

// IndexPages writes the styled index page of every pillar.
func (g *Generator) IndexPages(ctx context.Context) (*Result, error) {
	result := &Result{}
	for _, p := range g.catalog.Pillars {
		page := indexPage{
			Title:       p.Name,
			Slug:        p.Slug,
			NavOrder:    p.NavOrder,
			Description: p.Description,
			KeyAreas:    splitKeyAreas(p.KeyAreas),
			Services:    p.Services,
			Resources:   p.Resources,
		}
		path := paths.IndexFile(g.docsDir, p.Slug)
		if err := g.writePage(ctx, path, indexTemplate, page, result); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (g *Generator) writePage(ctx context.Context, path string, tmpl *template.Template, data any, result *Result) error {
	log := logging.FromContext(ctx)

	if g.SkipExisting {
		if _, err := os.Stat(path); err == nil {
			log.Debug("page exists, skipping", "path", path)
			result.Skipped++
			return nil
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return errors.Wrapf(err, "rendering %s", path)
	}

	if g.DryRun {
		log.Info("would write", "path", path)
		result.Written++
		return nil
	}

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrapf(err, "creating directory for %s", path)
	}
	if err := fileutil.WritePage(path, buf.Bytes()); err != nil {
		return err
	}

	log.Info("wrote page", "path", path)
	result.Written++
	return nil
}

// docSlug builds the pillar guide path segment for the published docs
// links, which run the slug's words together: "cost-optimization"
// becomes "costoptimization".
func docSlug(slug string) string {
	return strings.ReplaceAll(slug, "-", "")
}

// questionDocSlug builds the published framework page name for a
// question: SEC01 becomes sec-01.
func questionDocSlug(abbr, questionID string) string {
	num := strings.TrimPrefix(questionID, abbr)
	return fmt.Sprintf("%s-%s", strings.ToLower(abbr), num)
}

// splitKeyAreas breaks "Name - detail" entries into their parts.
// Entries without a separator keep everything in the name.
func splitKeyAreas(areas []string) []keyArea {
	out := make([]keyArea, 0, len(areas))
	for _, a := range areas {
		name, detail, found := strings.Cut(a, " - ")
		if !found {
			out = append(out, keyArea{Name: a})
			continue
		}
		out = append(out, keyArea{Name: name, Detail: detail})
	}
	return out
}

