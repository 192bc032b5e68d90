package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newFieldsCmd(opts *options) *cobra.Command {
	var (
		exposed    []string
		showValues bool
	)

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "List the fields a scenario may set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := opts.newPipeline(cmd, exposed)
			if err != nil {
				return err
			}
			views, err := p.Fields()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-28s  %-12s  %s\n", "Field", "Kind", "Default")
			fmt.Fprintln(out, strings.Repeat("─", 72))
			for _, v := range views {
				def := v.Default
				if v.Range != nil {
					def = fmt.Sprintf("%s (%d-%d)", v.Default, v.Range.Min, v.Range.Max)
				}
				fmt.Fprintf(out, "%-28s  %-12s  %s\n", v.Name, v.Kind, def)
				if showValues {
					for _, val := range v.Values {
						fmt.Fprintf(out, "    %s\n", val)
					}
				}
			}
			fmt.Fprintf(out, "\n%d fields\n", len(views))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&exposed, "exposed", nil, "Fields to list (default: the standard form fields)")
	cmd.Flags().BoolVar(&showValues, "values", false, "Also list each categorical field's permitted values")
	return cmd
}
