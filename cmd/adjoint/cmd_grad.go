package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/adjoint/internal/objective"
)

type gradOutput struct {
	Objective string    `json:"objective"`
	X         []float64 `json:"x"`
	Value     float64   `json:"value"`
	Gradient  []float64 `json:"gradient"`
}

func newGradCmd(a *app) *cobra.Command {
	var (
		name   string
		at     []float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "grad",
		Short: "Evaluate an objective and its gradient at a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := objective.Lookup(name)
			if err != nil {
				return err
			}
			x := at
			if len(x) == 0 {
				x = o.StartPoint()
			}
			if err := o.Check(x); err != nil {
				return err
			}

			value, grad, err := o.Func()(x)
			if err != nil {
				return err
			}
			a.logger.Debug("gradient evaluated", "objective", o.Name, "x", x, "value", value)

			out := gradOutput{Objective: o.Name, X: x, Value: value, Gradient: grad}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "value:    %g\n", out.Value)
			fmt.Fprintf(w, "gradient: %v\n", out.Gradient)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "objective", "o", "sphere", "objective name (see 'adjoint list')")
	cmd.Flags().Float64SliceVar(&at, "at", nil, "evaluation point, comma separated (default: objective's start)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print result as JSON")
	return cmd
}
