package question

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/wafctl/internal/catalog"
	"github.com/thoreinstein/wafctl/internal/cli"
	"github.com/thoreinstein/wafctl/internal/errors"
	"github.com/thoreinstein/wafctl/internal/logging"
)

func init() {
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [question-id]",
	Short: "Show one review question",
	Long: `Print a question's pillar, title, and registered best practices.

With no argument on a terminal, pick the question interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	return runShowWithWriter(cmd, cmd.OutOrStdout(), args)
}

func runShowWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
	cat, err := cli.LoadCatalog()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		pillar, q, err := cat.QuestionByID(args[0])
		if err != nil {
			return errors.NewUserError(err, "Run 'wafctl question show' with no argument to browse")
		}
		printQuestion(w, cat, pillar, q)
		return nil
	}

	if !logging.IsTTY(w) {
		return errors.NewUserError(nil, "A question ID is required when not running on a terminal")
	}
	return runInteractiveShow(w, cat)
}

// questionRef pairs a question with its pillar for the picker.
type questionRef struct {
	pillar *catalog.Pillar
	q      *catalog.Question
}

func runInteractiveShow(w io.Writer, cat *catalog.Catalog) error {
	var refs []questionRef
	for i := range cat.Pillars {
		p := &cat.Pillars[i]
		for j := range p.Questions {
			refs = append(refs, questionRef{pillar: p, q: &p.Questions[j]})
		}
	}
	if len(refs) == 0 {
		fmt.Fprintln(w, "No questions in the catalog.")
		return nil
	}

	idx, err := fuzzyfinder.Find(
		refs,
		func(i int) string {
			return fmt.Sprintf("%s: %s", refs[i].q.ID, refs[i].q.Title)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			r := refs[i]
			preview := fmt.Sprintf("Pillar: %s\nID: %s\n\n%s", r.pillar.Name, r.q.ID, r.q.Title)
			if practices := cat.PracticesFor(r.q.ID); len(practices) > 0 {
				preview += "\n\nBest practices:"
				for _, bp := range practices {
					preview += fmt.Sprintf("\n  %s: %s", bp.ID, bp.Title)
				}
			}
			return preview
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive question picker failed")
	}

	printQuestion(w, cat, refs[idx].pillar, refs[idx].q)
	return nil
}

func printQuestion(w io.Writer, cat *catalog.Catalog, pillar *catalog.Pillar, q *catalog.Question) {
	fmt.Fprintf(w, "%s: %s\n", q.ID, q.Title)
	fmt.Fprintf(w, "Pillar: %s (%s)\n", pillar.Name, pillar.Slug)

	if practices := cat.PracticesFor(q.ID); len(practices) > 0 {
		fmt.Fprintln(w, "Best practices:")
		for _, bp := range practices {
			fmt.Fprintf(w, "  %s: %s\n", bp.ID, bp.Title)
		}
	}
}
