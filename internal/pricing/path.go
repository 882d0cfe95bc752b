package pricing

import (
	"math"

	"mc-option-pricer/internal/model"
)

// SimulatePath simulates one GBM trajectory of p.Steps+1 points. Each point
// carries the driving Wiener process W(t) = Σ sqrt(Δt)·z next to the price,
// so both can be plotted from the same draws. p.Paths is ignored.
func SimulatePath(p model.SimulationParams, src model.NormalSource) []model.PathPoint {
	dt := p.Dt()
	sqrtDt := math.Sqrt(dt)
	drift := p.StepDrift()
	diffusion := p.StepDiffusion()

	pts := make([]model.PathPoint, p.Steps+1)
	pts[0] = model.PathPoint{Price: p.InitialPrice}
	for k := 1; k <= p.Steps; k++ {
		z := src.NormFloat64()
		prev := pts[k-1]
		pts[k] = model.PathPoint{
			Step:   k,
			Time:   float64(k) * dt,
			Wiener: prev.Wiener + sqrtDt*z,
			Price:  prev.Price * math.Exp(drift+diffusion*z),
		}
	}
	return pts
}
