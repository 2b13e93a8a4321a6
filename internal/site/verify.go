package site

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/thoreinstein/wafctl/internal/catalog"
	"github.com/thoreinstein/wafctl/internal/docs"
	"github.com/thoreinstein/wafctl/internal/logging"
	"github.com/thoreinstein/wafctl/internal/paths"
)

// PillarReport compares one pillar's local pages with the published
// question list.
type PillarReport struct {
	Pillar     string
	Slug       string
	LocalCount int
	Published  int

	// Missing lists published questions with no local page.
	Missing []catalog.Question

	// Extra lists local question IDs absent from the published list.
	// Best-practice pages are not counted either way.
	Extra []string

	// DirMissing is set when the pillar directory does not exist.
	DirMissing bool
}

// Clean reports whether the pillar tree matches the published list.
func (r *PillarReport) Clean() bool {
	return !r.DirMissing && len(r.Missing) == 0 && len(r.Extra) == 0
}

// Compare checks every catalog pillar against the published questions
// keyed by published pillar name ("Operational excellence"). Published
// pillars are matched to catalog pillars case-insensitively.
func Compare(ctx context.Context, docsDir string, cat *catalog.Catalog, published map[string][]catalog.Question) []PillarReport {
	log := logging.FromContext(ctx)

	reports := make([]PillarReport, 0, len(cat.Pillars))
	for _, p := range cat.Pillars {
		report := PillarReport{Pillar: p.Name, Slug: p.Slug}

		questions, ok := publishedFor(published, p.Name)
		if !ok {
			log.Warn("pillar not in published appendix", "pillar", p.Name)
		}
		report.Published = len(questions)

		dir := paths.PillarDir(docsDir, p.Slug)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			report.DirMissing = true
			log.Warn("pillar directory missing", "pillar", p.Slug, "dir", dir)
			reports = append(reports, report)
			continue
		}

		pages, err := docs.ScanPillar(dir)
		if err != nil {
			log.Warn("could not scan pillar", "pillar", p.Slug, "error", err)
			reports = append(reports, report)
			continue
		}

		local := make(map[string]bool)
		for _, page := range pages {
			// Best-practice pages belong to a question that is counted
			// through its own page.
			if strings.Contains(page.ID, "-BP") {
				continue
			}
			local[page.ID] = true
		}
		report.LocalCount = len(local)

		publishedIDs := make(map[string]bool, len(questions))
		for _, q := range questions {
			publishedIDs[q.ID] = true
			if !local[q.ID] {
				report.Missing = append(report.Missing, q)
			}
		}
		for id := range local {
			if !publishedIDs[id] {
				report.Extra = append(report.Extra, id)
			}
		}
		sort.Strings(report.Extra)

		reports = append(reports, report)
	}
	return reports
}

// publishedFor finds the published question list for a catalog pillar
// name; the appendix capitalizes only the first word.
func publishedFor(published map[string][]catalog.Question, name string) ([]catalog.Question, bool) {
	for k, v := range published {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}
