package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every validation failure in SimulationParams.
var ErrInvalidParams = errors.New("invalid simulation parameters")

// SimulationParams defines one Monte Carlo run under geometric Brownian motion.
// Units:
// - InitialPrice, Strike: currency units
// - Maturity: years
// - Rate: continuously compounded risk-free rate, annualized
// - Volatility: annualized
// - Steps: time steps per path (M)
// - Paths: simulated trajectories (N)
type SimulationParams struct {
	InitialPrice float64
	Strike       float64
	Maturity     float64
	Rate         float64
	Volatility   float64
	Steps        int
	Paths        int
	Type         OptionType
}

func (p SimulationParams) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"InitialPrice", p.InitialPrice},
		{"Strike", p.Strike},
		{"Maturity", p.Maturity},
		{"Rate", p.Rate},
		{"Volatility", p.Volatility},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidParams, f.name)
		}
	}
	if p.InitialPrice <= 0 {
		return fmt.Errorf("%w: InitialPrice must be > 0", ErrInvalidParams)
	}
	if p.Strike < 0 {
		return fmt.Errorf("%w: Strike must be >= 0", ErrInvalidParams)
	}
	if p.Maturity <= 0 {
		return fmt.Errorf("%w: Maturity must be > 0", ErrInvalidParams)
	}
	if p.Volatility < 0 {
		return fmt.Errorf("%w: Volatility must be >= 0", ErrInvalidParams)
	}
	if p.Steps <= 0 {
		return fmt.Errorf("%w: Steps must be > 0", ErrInvalidParams)
	}
	if p.Paths <= 0 {
		return fmt.Errorf("%w: Paths must be > 0", ErrInvalidParams)
	}
	if _, err := ParseOptionType(string(p.Type)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}
	return nil
}

// Dt is the length of one time step in years.
func (p SimulationParams) Dt() float64 {
	return p.Maturity / float64(p.Steps)
}

// StepDrift is the deterministic part of the per-step log return, (r - σ²/2)·Δt.
func (p SimulationParams) StepDrift() float64 {
	return (p.Rate - 0.5*p.Volatility*p.Volatility) * p.Dt()
}

// StepDiffusion scales a standard normal draw into the random part of the
// per-step log return, σ·sqrt(Δt).
func (p SimulationParams) StepDiffusion() float64 {
	return p.Volatility * math.Sqrt(p.Dt())
}

func (p SimulationParams) DiscountFactor() float64 {
	return math.Exp(-p.Rate * p.Maturity)
}

// Payoff returns the option payoff for a terminal asset price.
func (p SimulationParams) Payoff(terminal float64) float64 {
	return p.Type.Payoff(terminal, p.Strike)
}

// Next advances a price by one step given a standard normal draw z.
func (p SimulationParams) Next(price, z float64) float64 {
	return price * math.Exp(p.StepDrift()+p.StepDiffusion()*z)
}
