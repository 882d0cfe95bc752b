package strategy

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"mc-option-pricer/internal/model"
)

// VectorizedStrategy computes the whole ensemble at once on an (M+1)×N grid:
// rows are time steps, columns are paths.
//
//	grid[0, :]   = 0                         (initial state)
//	grid[k, :]   = (r - σ²/2)Δt + σ·sqrt(Δt)·Z[k, :]
//	grid         = cumsum(grid, axis=time)
//	S            = S0 · exp(grid)
//	payoffs      = payoff(S[M, :])
//
// The normal grid is filled column by column so that a given seed produces the
// same draws per path as ScalarStrategy.
type VectorizedStrategy struct{}

func (s *VectorizedStrategy) Name() string { return "vectorized" }

func (s *VectorizedStrategy) Payoffs(ctx context.Context, p model.SimulationParams, src model.NormalSource) ([]float64, error) {
	rows, cols := p.Steps+1, p.Paths
	grid := mat.NewDense(rows, cols, nil)

	raw := grid.RawMatrix()
	for j := 0; j < cols; j++ {
		if j%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		for i := 1; i < rows; i++ {
			raw.Data[i*raw.Stride+j] = src.NormFloat64()
		}
	}

	drift := p.StepDrift()
	diffusion := p.StepDiffusion()
	for i := 1; i < rows; i++ {
		row := grid.RawRowView(i)
		floats.Scale(diffusion, row)
		floats.AddConst(drift, row)
	}

	for i := 1; i < rows; i++ {
		floats.Add(grid.RawRowView(i), grid.RawRowView(i-1))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	grid.Apply(func(_, _ int, v float64) float64 { return math.Exp(v) }, grid)
	grid.Scale(p.InitialPrice, grid)

	terminal := grid.RawRowView(rows - 1)
	payoffs := make([]float64, cols)
	for j, price := range terminal {
		payoffs[j] = p.Payoff(price)
	}
	return payoffs, nil
}
