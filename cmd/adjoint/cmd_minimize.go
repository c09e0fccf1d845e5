package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/born-ml/adjoint/internal/objective"
	"github.com/born-ml/adjoint/internal/optim"
)

type minimizeOutput struct {
	RunID       string    `json:"run_id"`
	Objective   string    `json:"objective"`
	Method      string    `json:"method"`
	Starts      int       `json:"starts"`
	Best        int       `json:"best"`
	X           []float64 `json:"x"`
	Value       float64   `json:"value"`
	Iterations  int       `json:"iterations"`
	Evaluations int       `json:"evaluations"`
	Converged   bool      `json:"converged"`
}

func newMinimizeCmd(a *app) *cobra.Command {
	var (
		name        string
		guess       []float64
		maxIter     int
		asJSON      bool
		metricsFile string
		starts      int
		spread      float64
		seed        uint64
		method      string
		lr          float64
	)

	cmd := &cobra.Command{
		Use:   "minimize",
		Short: "Minimize a benchmark objective with backtracking gradient descent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := objective.Lookup(name)
			if err != nil {
				return err
			}
			x := guess
			if len(x) == 0 {
				x = o.StartPoint()
			}
			if err := o.Check(x); err != nil {
				return err
			}
			if method != "gd" && method != "sgd" && method != "adam" {
				return fmt.Errorf("unknown method %q (want gd, sgd or adam)", method)
			}
			if starts < 1 {
				return fmt.Errorf("--starts must be at least 1, got %d", starts)
			}

			runID := uuid.NewString()
			logger := a.logger.With("run_id", runID, "objective", o.Name)

			reg := prometheus.NewRegistry()
			metrics := optim.NewMetrics(reg)

			oc := a.cfg.OptimConfig(logger, metrics)
			if maxIter > 0 {
				oc.MaxIter = maxIter
			}

			points := startPoints(x, starts, spread, seed)
			logger.Info("minimization started", "guess", x, "starts", starts, "max_iter", oc.MaxIter)
			run := optim.Runner(optim.NewGradientDescent(oc).Minimize)
			if method != "gd" {
				run = func(f optim.Objective, guess []float64) (optim.Result, error) {
					return optim.Descend(f, newStepper(method, lr), guess, oc)
				}
			}
			results, best, err := optim.MultiStart(run, o.Func, points, a.cfg.ParallelConfig())
			if err != nil {
				return err
			}
			if best < 0 {
				return errors.New("no run reached a finite value")
			}
			res := results[best]
			logger.Info("minimization finished", "best_start", best,
				"value", res.Value, "iterations", res.Iterations,
				"evaluations", res.Evaluations, "converged", res.Converged)

			if metricsFile == "" {
				metricsFile = a.cfg.Metrics.Textfile
			}
			if metricsFile != "" {
				if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
					return fmt.Errorf("write metrics: %w", err)
				}
			}

			out := minimizeOutput{
				RunID:       runID,
				Objective:   o.Name,
				Method:      method,
				Starts:      starts,
				Best:        best,
				X:           res.X,
				Value:       res.Value,
				Iterations:  res.Iterations,
				Evaluations: res.Evaluations,
				Converged:   res.Converged,
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "objective:   %s\n", out.Objective)
			fmt.Fprintf(w, "method:      %s\n", out.Method)
			if starts > 1 {
				fmt.Fprintf(w, "best start:  %d of %d\n", out.Best, out.Starts)
			}
			fmt.Fprintf(w, "x:           %v\n", out.X)
			fmt.Fprintf(w, "value:       %g\n", out.Value)
			fmt.Fprintf(w, "iterations:  %d (%d evaluations)\n", out.Iterations, out.Evaluations)
			fmt.Fprintf(w, "converged:   %t\n", out.Converged)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "objective", "o", "sphere", "objective name (see 'adjoint list')")
	cmd.Flags().Float64SliceVar(&guess, "guess", nil, "starting point, comma separated (default: objective's start)")
	cmd.Flags().IntVar(&maxIter, "max-iter", 0, "outer iteration cap (default: from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print result as JSON")
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	cmd.Flags().StringVar(&method, "method", "gd", "gd (line search), sgd or adam")
	cmd.Flags().Float64Var(&lr, "lr", 0, "learning rate for sgd and adam (default: stepper's own)")
	cmd.Flags().IntVar(&starts, "starts", 1, "number of starting points; extra ones are drawn around the guess")
	cmd.Flags().Float64Var(&spread, "spread", 1, "half-width of the box extra starting points are drawn from")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for extra starting points")
	return cmd
}

// newStepper returns a fresh stepper; steppers carry per-run state.
func newStepper(method string, lr float64) optim.Stepper {
	if method == "adam" {
		return optim.NewAdam(optim.AdamConfig{LR: lr})
	}
	return optim.NewSGD(optim.SGDConfig{LR: lr})
}

// startPoints returns guess followed by n-1 points drawn uniformly from the
// box of half-width spread centred on guess.
func startPoints(guess []float64, n int, spread float64, seed uint64) [][]float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([][]float64, n)
	points[0] = guess
	for i := 1; i < n; i++ {
		p := make([]float64, len(guess))
		for j, g := range guess {
			p[j] = g + spread*(2*rng.Float64()-1)
		}
		points[i] = p
	}
	return points
}
