// Package strategy holds the interchangeable ways of turning simulation
// parameters and a standard normal stream into terminal payoffs.
//
// Every Strategy produces the same quantity; they differ only in how the
// work is executed. Averaging and discounting live in package pricing so that
// the strategies can be compared without duplicating that logic.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"mc-option-pricer/internal/model"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// checkEvery is how many paths a sequential strategy simulates between
// context checks.
const checkEvery = 1024

type Strategy interface {
	Name() string
	// Payoffs returns exactly p.Paths terminal payoffs. Callers validate p first.
	Payoffs(ctx context.Context, p model.SimulationParams, src model.NormalSource) ([]float64, error)
}

type factory func(params map[string]any) (Strategy, error)

var registry = map[string]factory{
	"scalar": func(map[string]any) (Strategy, error) { return &ScalarStrategy{}, nil },
	"vectorized": func(map[string]any) (Strategy, error) {
		return &VectorizedStrategy{}, nil
	},
	"parallel": func(params map[string]any) (Strategy, error) {
		s := &ParallelStrategy{
			Workers:   int(numParam(params, "workers", 0)),
			ChunkSize: int(numParam(params, "chunk_size", 0)),
		}
		if s.Workers < 0 || s.ChunkSize < 0 {
			return nil, fmt.Errorf("parallel: workers and chunk_size must be >= 0")
		}
		return s, nil
	},
}

// New builds a strategy by name. params may be nil.
func New(name string, params map[string]any) (Strategy, error) {
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
	return f(params)
}

// Names lists registered strategies in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func numParam(m map[string]any, key string, def float64) float64 {
	if v, ok := m[key]; ok && v != nil {
		switch x := v.(type) {
		case float64:
			return x
		case float32:
			return float64(x)
		case int:
			return float64(x)
		case int64:
			return float64(x)
		case uint64:
			return float64(x)
		}
	}
	return def
}
