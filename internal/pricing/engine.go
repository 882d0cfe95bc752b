// Package pricing turns strategy payoffs into a discounted Monte Carlo price.
//
// The estimator is the same for every strategy:
//
//	price = exp(-rT) * mean(payoff_i), i = 1..N
//
// so the Engine owns averaging, discounting and timing, and strategies only
// produce payoffs.
package pricing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"mc-option-pricer/internal/logging"
	"mc-option-pricer/internal/model"
	"mc-option-pricer/internal/strategy"
)

type Engine struct {
	log *slog.Logger
}

func New() *Engine { return &Engine{log: logging.Get()} }

// WithLogger returns a copy of e that logs to l.
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	cp := *e
	cp.log = l
	return &cp
}

// Run prices one option with strat. Inputs are validated before any
// simulation; the random stream is seeded from in.Seed so that repeated runs
// are bit-identical.
func (e *Engine) Run(ctx context.Context, in model.Inputs, strat strategy.Strategy) (*Result, error) {
	if strat == nil {
		return nil, errors.New("strategy is nil")
	}
	p := in.Params
	if err := p.Validate(); err != nil {
		return nil, err
	}

	src := model.NewSource(in.Seed)

	start := time.Now()
	payoffs, err := strat.Payoffs(ctx, p, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", strat.Name(), err)
	}
	if len(payoffs) != p.Paths {
		return nil, fmt.Errorf("%s: got %d payoffs, want %d", strat.Name(), len(payoffs), p.Paths)
	}
	mean, sd := stat.MeanStdDev(payoffs, nil)
	elapsed := time.Since(start)

	df := p.DiscountFactor()
	stdErr := 0.0
	if len(payoffs) > 1 {
		stdErr = df * sd / math.Sqrt(float64(len(payoffs)))
	}

	res := &Result{
		Strategy:       strat.Name(),
		Type:           p.Type,
		Price:          df * mean,
		StdErr:         stdErr,
		MeanPayoff:     mean,
		DiscountFactor: df,
		Paths:          p.Paths,
		Steps:          p.Steps,
		Seed:           in.Seed,
		Elapsed:        elapsed,
	}

	e.logger().DebugContext(ctx, "estimate finished",
		slog.String("strategy", res.Strategy),
		slog.Int("paths", res.Paths),
		slog.Int("steps", res.Steps),
		slog.Int64("seed", res.Seed),
		slog.Float64("price", res.Price),
		slog.Float64("std_err", res.StdErr),
		slog.Duration("elapsed", res.Elapsed),
	)
	return res, nil
}

// Path simulates the single trajectory used for plotting.
func (e *Engine) Path(in model.Inputs) ([]model.PathPoint, error) {
	if err := in.Params.Validate(); err != nil {
		return nil, err
	}
	return SimulatePath(in.Params, model.NewSource(in.Seed)), nil
}

func (e *Engine) logger() *slog.Logger {
	if e.log == nil {
		return logging.Get()
	}
	return e.log
}
