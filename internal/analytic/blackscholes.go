// Package analytic holds the closed-form Black-Scholes-Merton price that the
// Monte Carlo estimators approximate.
//
// Under the Black-Scholes-Merton assumptions (frictionless market, constant
// risk-free rate r and volatility σ, no dividends, European exercise) the
// option value V(S, t) solves
//
//	∂V/∂t + ½σ²S²∂²V/∂S² + rS∂V/∂S - rV = 0
//
// with terminal condition V(S, T) = payoff(S). Its solution is the discounted
// risk-neutral expectation of the payoff with S following geometric Brownian
// motion, which is exactly what package pricing estimates by simulation.
package analytic

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"mc-option-pricer/internal/model"
)

var ErrInvalidInputs = errors.New("invalid inputs")

// Call prices a European call. S: spot, K: strike, r: rate, sigma: volatility,
// T: years to maturity.
func Call(S, K, r, sigma, T float64) (float64, error) {
	if err := validate(S, K, sigma, T); err != nil {
		return 0, err
	}
	if T == 0 || K == 0 {
		return math.Max(S-K, 0), nil
	}
	if sigma == 0 {
		return math.Max(S-K*math.Exp(-r*T), 0), nil
	}
	d1, d2 := d1d2(S, K, r, sigma, T)
	return S*normCDF(d1) - K*math.Exp(-r*T)*normCDF(d2), nil
}

// Put prices a European put.
func Put(S, K, r, sigma, T float64) (float64, error) {
	if err := validate(S, K, sigma, T); err != nil {
		return 0, err
	}
	if T == 0 || K == 0 {
		return math.Max(K-S, 0), nil
	}
	if sigma == 0 {
		return math.Max(K*math.Exp(-r*T)-S, 0), nil
	}
	d1, d2 := d1d2(S, K, r, sigma, T)
	return K*math.Exp(-r*T)*normCDF(-d2) - S*normCDF(-d1), nil
}

// Price dispatches on p.Type. Steps and Paths are ignored.
func Price(p model.SimulationParams) (float64, error) {
	if p.Type == model.OptionPut {
		return Put(p.InitialPrice, p.Strike, p.Rate, p.Volatility, p.Maturity)
	}
	return Call(p.InitialPrice, p.Strike, p.Rate, p.Volatility, p.Maturity)
}

func d1d2(S, K, r, sigma, T float64) (float64, float64) {
	sqrtT := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r+0.5*sigma*sigma)*T) / (sigma * sqrtT)
	return d1, d1 - sigma*sqrtT
}

func validate(S, K, sigma, T float64) error {
	if S <= 0 || K < 0 || sigma < 0 || T < 0 {
		return ErrInvalidInputs
	}
	if math.IsNaN(S) || math.IsNaN(K) || math.IsNaN(sigma) || math.IsNaN(T) {
		return ErrInvalidInputs
	}
	return nil
}

func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}
