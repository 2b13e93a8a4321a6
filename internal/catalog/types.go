// Package catalog holds the static framework data wafctl generates
// pages from: pillars, their review questions, and best practices.
//
// The compiled-in default catalog mirrors the published framework. It
// is loaded once at startup and treated as read-only; a YAML file can
// replace it wholesale via the `catalog` config key.
package catalog

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	waferrors "github.com/thoreinstein/wafctl/internal/errors"
)

// Question is a single review question within a pillar.
type Question struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// Service describes a recommended service for a pillar or question.
type Service struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Resource is a related-documentation link.
type Resource struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// BestPractice is a titled practice nested under a question.
type BestPractice struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	NavOrder    int    `yaml:"nav_order"`
}

// Pillar is a top-level category of the documentation.
type Pillar struct {
	Name        string     `yaml:"name"`
	Slug        string     `yaml:"slug"`
	Abbr        string     `yaml:"abbr"`
	NavOrder    int        `yaml:"nav_order"`
	Description string     `yaml:"description"`
	KeyAreas    []string   `yaml:"key_areas"`
	Services    []Service  `yaml:"services"`
	Resources   []Resource `yaml:"resources"`
	Questions   []Question `yaml:"questions"`
}

// Catalog is the full framework dataset.
type Catalog struct {
	Pillars []Pillar `yaml:"pillars"`

	// BestPractices maps a question ID to its practice pages.
	BestPractices map[string][]BestPractice `yaml:"best_practices"`
}

// idPattern matches question and best-practice identifiers:
// SEC01, COST11, SEC01-BP05.
var idPattern = regexp.MustCompile(`^([A-Z]+)(\d+)(?:-BP\d+)?$`)

// PillarBySlug returns the pillar with the given directory slug.
func (c *Catalog) PillarBySlug(slug string) (*Pillar, error) {
	for i := range c.Pillars {
		if c.Pillars[i].Slug == slug {
			return &c.Pillars[i], nil
		}
	}
	return nil, errors.Wrapf(waferrors.ErrUnknownPillar, "slug %q", slug)
}

// PillarByAbbr returns the pillar with the given ID prefix (SEC, OPS, ...).
func (c *Catalog) PillarByAbbr(abbr string) (*Pillar, error) {
	for i := range c.Pillars {
		if c.Pillars[i].Abbr == abbr {
			return &c.Pillars[i], nil
		}
	}
	return nil, errors.Wrapf(waferrors.ErrUnknownPillar, "abbreviation %q", abbr)
}

// PillarForID resolves the owning pillar of a question or best-practice ID.
func (c *Catalog) PillarForID(id string) (*Pillar, error) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return nil, errors.Wrapf(waferrors.ErrInvalidQuestionID, "%q", id)
	}
	return c.PillarByAbbr(m[1])
}

// QuestionByID returns the question with the given ID.
// Best-practice IDs resolve to their parent question.
func (c *Catalog) QuestionByID(id string) (*Pillar, *Question, error) {
	questionID := id
	if idx := strings.Index(id, "-BP"); idx > 0 {
		questionID = id[:idx]
	}

	p, err := c.PillarForID(questionID)
	if err != nil {
		return nil, nil, err
	}
	for i := range p.Questions {
		if p.Questions[i].ID == questionID {
			return p, &p.Questions[i], nil
		}
	}
	return nil, nil, errors.Wrapf(waferrors.ErrNotFound, "question %q", questionID)
}

// PracticesFor returns the best practices registered for a question ID.
// Questions without registered practices return an empty slice.
func (c *Catalog) PracticesFor(questionID string) []BestPractice {
	return c.BestPractices[questionID]
}

// Slugs returns every pillar slug in catalog order.
func (c *Catalog) Slugs() []string {
	slugs := make([]string, len(c.Pillars))
	for i, p := range c.Pillars {
		slugs[i] = p.Slug
	}
	return slugs
}
