package catalog

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	waferrors "github.com/thoreinstein/wafctl/internal/errors"
)

// Load returns the catalog to use for this invocation. With an empty
// path it returns the compiled-in default; otherwise the YAML file at
// path replaces the default wholesale.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog file %s", path)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "parsing catalog file %s", path)
	}

	if err := c.validate(); err != nil {
		return nil, errors.Wrapf(err, "catalog file %s", path)
	}
	return &c, nil
}

// validate checks the invariants the generators depend on: unique
// slugs and abbreviations, and well-formed question IDs that carry
// their pillar's abbreviation.
func (c *Catalog) validate() error {
	if len(c.Pillars) == 0 {
		return errors.Wrap(waferrors.ErrInvalidConfig, "catalog has no pillars")
	}

	slugs := make(map[string]bool, len(c.Pillars))
	abbrs := make(map[string]bool, len(c.Pillars))
	for _, p := range c.Pillars {
		if p.Name == "" || p.Slug == "" || p.Abbr == "" {
			return errors.Wrapf(waferrors.ErrInvalidConfig, "pillar %q missing name, slug, or abbr", p.Name)
		}
		if slugs[p.Slug] {
			return errors.Wrapf(waferrors.ErrInvalidConfig, "duplicate pillar slug %q", p.Slug)
		}
		if abbrs[p.Abbr] {
			return errors.Wrapf(waferrors.ErrInvalidConfig, "duplicate pillar abbreviation %q", p.Abbr)
		}
		slugs[p.Slug] = true
		abbrs[p.Abbr] = true

		for _, q := range p.Questions {
			m := idPattern.FindStringSubmatch(q.ID)
			if m == nil {
				return errors.Wrapf(waferrors.ErrInvalidQuestionID, "%q in pillar %q", q.ID, p.Slug)
			}
			if m[1] != p.Abbr {
				return errors.Wrapf(waferrors.ErrInvalidQuestionID, "%q does not belong to pillar %q", q.ID, p.Abbr)
			}
		}
	}

	for qid, practices := range c.BestPractices {
		if _, _, err := c.QuestionByID(qid); err != nil {
			return errors.Wrapf(err, "best practices keyed by unknown question %q", qid)
		}
		for _, bp := range practices {
			if !idPattern.MatchString(bp.ID) {
				return errors.Wrapf(waferrors.ErrInvalidQuestionID, "best practice %q under %q", bp.ID, qid)
			}
		}
	}
	return nil
}
