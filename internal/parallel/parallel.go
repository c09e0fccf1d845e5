// Package parallel runs independent work items on a bounded set of goroutines.
//
// Work items must not share mutable state. In this module each item is a
// whole minimization run that owns its own tape.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of concurrent work items.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// For executes f(i) for i in [0, n) and returns the first error.
//
// Falls back to sequential execution, stopping at the first error, if
// parallelism is disabled or there is at most one item or one worker. In
// parallel mode every item runs even after a failure.
func For(n int, f func(i int) error, cfg Config) error {
	if !cfg.Enabled || n < 2 || cfg.NumWorkers <= 1 {
		for i := range n {
			if err := f(i); err != nil {
				return err
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for i := range n {
		g.Go(func() error { return f(i) })
	}
	return g.Wait()
}
