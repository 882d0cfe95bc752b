package main

import (
	"context"
	"flag"
	"fmt"

	"mc-option-pricer/internal/analysis"
	"mc-option-pricer/internal/analytic"
	"mc-option-pricer/internal/config"
	"mc-option-pricer/internal/pricing"
	"mc-option-pricer/internal/strategy"
)

// Demo:
// - Price a European call with the scalar (loop) estimator
// - Price the same option with the vectorized (grid) estimator, same seed
// - Compare both against the closed-form Black-Scholes price and each other
// - Optionally write one simulated path for plotting
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	paths := flag.Int("paths", 0, "Override number of simulated paths (0 = config)")
	outCSV := flag.String("path-out", "", "Optional path to write a single simulated path CSV (e.g. results/path.csv)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		cfg = loaded
	}
	if *paths > 0 {
		cfg.Params.Paths = *paths
	}
	in := cfg.Inputs()
	p := in.Params

	fmt.Printf("European %s: S0=%.2f K=%.2f T=%.2f r=%.4f sigma=%.4f\n",
		p.Type, p.InitialPrice, p.Strike, p.Maturity, p.Rate, p.Volatility)
	fmt.Printf("Simulation: steps=%d paths=%d seed=%d\n\n", p.Steps, p.Paths, in.Seed)

	ref, err := analytic.Price(p)
	if err != nil {
		panic(err)
	}

	strats := []strategy.Strategy{&strategy.ScalarStrategy{}, &strategy.VectorizedStrategy{}}
	cs, err := analysis.Compare(context.Background(), pricing.New(), in, strats)
	if err != nil {
		panic(err)
	}

	for _, c := range cs {
		fmt.Printf("%-11s price=%s  std_err=%s  elapsed=%-14s  vs analytic=%+.4f\n",
			c.Strategy,
			pricing.FormatPrice(c.Price, pricing.PriceDecimals),
			pricing.FormatPrice(c.StdErr, pricing.PriceDecimals),
			c.Elapsed,
			c.Price-ref,
		)
	}
	fmt.Printf("\nBlack-Scholes closed form: %s\n", pricing.FormatPrice(ref, pricing.PriceDecimals))

	scalar, vec := cs[0], cs[1]
	fmt.Printf("Scalar vs vectorized: |diff|=%.2g  speedup=%.2fx\n", vec.PriceDiff, vec.Speedup)

	if *outCSV != "" {
		pts, err := pricing.New().Path(in)
		if err != nil {
			panic(err)
		}
		if err := pricing.WritePathCSV(*outCSV, pts); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Scalar took %s, vectorized took %s.\n", scalar.Elapsed, vec.Elapsed)
}
