package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/saferoute/internal/domain"
	"github.com/couchcryptid/saferoute/internal/pipeline"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		sets    []string
		exposed []string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate one scenario",
		Long:  "Evaluate one scenario. Fields not given with --set take their defaults.",
		Example: `  assess run --set Light_conditions="Darkness - no lighting" --set Hour_of_Day=2
  assess run --set Weather_conditions=Raining --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelections(sets)
			if err != nil {
				return err
			}
			p, _, err := opts.newPipeline(cmd, exposed)
			if err != nil {
				return err
			}

			eval, err := p.Evaluate(cmd.Context(), sel)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(eval)
			}
			printEvaluation(cmd.OutOrStdout(), eval)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "Field value as Field=Value (repeatable)")
	cmd.Flags().StringSliceVar(&exposed, "exposed", nil, "Fields the scenario may set (default: the standard form fields)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full evaluation as JSON")
	return cmd
}

// parseSelections splits each Field=Value pair on the first '='. Values may
// contain '=' and ','; a field given twice keeps the last value.
func parseSelections(pairs []string) (domain.Selections, error) {
	sel := make(domain.Selections, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		field = strings.TrimSpace(field)
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --set %q: want Field=Value", pair)
		}
		sel[field] = value
	}
	return sel, nil
}

func printEvaluation(w io.Writer, eval pipeline.Evaluation) {
	a := eval.Assessment
	fmt.Fprintln(w, a.Label)
	fmt.Fprintln(w, a.Message)
	fmt.Fprintf(w, "Confidence: %.1f%%\n\n", a.Confidence*100)
	for _, t := range []domain.Tier{domain.TierFatal, domain.TierSerious, domain.TierSlight} {
		fmt.Fprintf(w, "  %-8s %5.1f%%\n", t, a.Probabilities.Of(t)*100)
	}
}
