package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/saferoute/internal/artifact"
	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/couchcryptid/saferoute/internal/pipeline"
)

// phase tracks pass/fail for one consistency check.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the model and catalog agree with the feature schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, arts, err := opts.newPipeline(cmd, nil)
			if err != nil {
				return err
			}

			phases := []*phase{
				checkColumns(arts),
				checkLevels(arts),
				checkDefaultScenario(cmd, p),
			}
			if failed := report(cmd.OutOrStdout(), phases); failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(phases))
			}
			return nil
		},
	}
}

// checkColumns compares the model's required columns with the schema.
func checkColumns(arts *artifact.Artifacts) *phase {
	ph := &phase{name: "model columns match schema"}

	required := make(map[string]bool)
	for _, col := range arts.Classifier.Columns() {
		required[col] = true
		if _, ok := domain.LookupField(col); !ok {
			ph.errorf("model requires column %s, which the schema does not produce", col)
		}
	}
	for _, name := range domain.FieldNames() {
		if !required[name] {
			ph.errorf("schema field %s is not a model column", name)
		}
	}
	return ph
}

// checkLevels reports categorical levels the model weights but the form can
// never submit because the catalog does not list them.
func checkLevels(arts *artifact.Artifacts) *phase {
	ph := &phase{name: "model levels are in the catalog"}
	for _, field := range domain.CategoricalFields() {
		for _, level := range arts.Classifier.Levels(field) {
			if !arts.Catalog.Contains(field, level) {
				ph.errorf("%s=%q has weights but is not in the catalog", field, level)
			}
		}
	}
	return ph
}

// checkDefaultScenario evaluates the all-defaults record end to end.
func checkDefaultScenario(cmd *cobra.Command, p *pipeline.Pipeline) *phase {
	ph := &phase{name: "default scenario evaluates"}
	eval, err := p.Evaluate(cmd.Context(), domain.Selections{})
	if err != nil {
		ph.errorf("%v", err)
		return ph
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "default scenario: %s (confidence %.1f%%)\n",
		eval.Assessment.Tier, eval.Assessment.Confidence*100)
	return ph
}

func report(w io.Writer, phases []*phase) int {
	failed := 0
	for _, ph := range phases {
		if ph.passed() {
			fmt.Fprintf(w, "PASS  %s\n", ph.name)
			continue
		}
		failed++
		fmt.Fprintf(w, "FAIL  %s\n", ph.name)
		for _, e := range ph.errors {
			fmt.Fprintf(w, "      %s\n", e)
		}
	}
	return failed
}
