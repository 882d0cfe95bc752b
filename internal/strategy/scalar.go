package strategy

import (
	"context"
	"math"

	"mc-option-pricer/internal/model"
)

// ScalarStrategy simulates one path at a time with plain nested loops:
// for each trial, M sequential draws build an M+1 price path whose last
// element feeds the payoff. Draws are consumed trial-major, step-minor.
type ScalarStrategy struct{}

func (s *ScalarStrategy) Name() string { return "scalar" }

func (s *ScalarStrategy) Payoffs(ctx context.Context, p model.SimulationParams, src model.NormalSource) ([]float64, error) {
	payoffs := make([]float64, p.Paths)
	if err := scalarKernel(ctx, p, src, payoffs); err != nil {
		return nil, err
	}
	return payoffs, nil
}

// scalarKernel fills out with len(out) payoffs. It is shared with the parallel
// strategy, which runs it once per chunk.
func scalarKernel(ctx context.Context, p model.SimulationParams, src model.NormalSource, out []float64) error {
	drift := p.StepDrift()
	diffusion := p.StepDiffusion()

	for i := range out {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		path := make(model.Path, p.Steps+1)
		path[0] = p.InitialPrice
		for t := 1; t <= p.Steps; t++ {
			z := src.NormFloat64()
			path[t] = path[t-1] * math.Exp(drift+diffusion*z)
		}
		out[i] = p.Payoff(path.Terminal())
	}
	return nil
}
