package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"mc-option-pricer/internal/analytic"
	"mc-option-pricer/internal/model"
	"mc-option-pricer/internal/pricing"
	"mc-option-pricer/internal/strategy"
)

// ConvergencePoint is the estimator at one path count, next to the
// closed-form price it should approach.
type ConvergencePoint struct {
	Paths    int
	Price    float64
	StdErr   float64
	Elapsed  time.Duration
	Analytic float64
	AbsError float64
}

// Convergence re-runs strat for each path count in counts, keeping every
// other input (including the seed) fixed.
func Convergence(ctx context.Context, e *pricing.Engine, in model.Inputs, strat strategy.Strategy, counts []int) ([]ConvergencePoint, error) {
	if len(counts) == 0 {
		return nil, errors.New("no path counts")
	}
	if err := in.Params.Validate(); err != nil {
		return nil, err
	}
	ref, err := analytic.Price(in.Params)
	if err != nil {
		return nil, fmt.Errorf("analytic reference: %w", err)
	}

	out := make([]ConvergencePoint, 0, len(counts))
	for _, n := range counts {
		run := in
		run.Params.Paths = n
		res, err := e.Run(ctx, run, strat)
		if err != nil {
			return nil, fmt.Errorf("paths=%d: %w", n, err)
		}
		out = append(out, ConvergencePoint{
			Paths:    n,
			Price:    res.Price,
			StdErr:   res.StdErr,
			Elapsed:  res.Elapsed,
			Analytic: ref,
			AbsError: math.Abs(res.Price - ref),
		})
	}
	return out, nil
}
