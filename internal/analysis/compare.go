package analysis

import (
	"context"
	"errors"
	"math"
	"sort"

	"mc-option-pricer/internal/model"
	"mc-option-pricer/internal/pricing"
	"mc-option-pricer/internal/strategy"
)

// Comparison is one strategy's result measured against the baseline
// (the first strategy passed to Compare).
type Comparison struct {
	*pricing.Result

	// Speedup is baseline elapsed / this elapsed; 0 when not measurable.
	Speedup float64
	// PriceDiff is |Price - baseline Price|.
	PriceDiff float64
}

// Compare runs every strategy on identical inputs (same params, same seed).
func Compare(ctx context.Context, e *pricing.Engine, in model.Inputs, strats []strategy.Strategy) ([]Comparison, error) {
	if len(strats) == 0 {
		return nil, errors.New("no strategies to compare")
	}
	out := make([]Comparison, 0, len(strats))
	for _, s := range strats {
		res, err := e.Run(ctx, in, s)
		if err != nil {
			return nil, err
		}
		out = append(out, Comparison{Result: res})
	}

	base := out[0].Result
	for i := range out {
		c := &out[i]
		c.PriceDiff = math.Abs(c.Price - base.Price)
		if c.Elapsed > 0 && base.Elapsed > 0 {
			c.Speedup = float64(base.Elapsed) / float64(c.Elapsed)
		}
	}
	return out, nil
}

// RankBySpeed returns a copy sorted fastest first.
func RankBySpeed(cs []Comparison) []Comparison {
	out := make([]Comparison, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Elapsed < out[j].Elapsed
	})
	return out
}
