package main

import (
	"fmt"
	"strings"

	"mc-option-pricer/internal/analysis"
	"mc-option-pricer/internal/analytic"
	"mc-option-pricer/internal/logging"
	"mc-option-pricer/internal/pricing"
	"mc-option-pricer/internal/strategy"

	"github.com/spf13/cobra"
)

func newPriceCmd(o *rootOptions) *cobra.Command {
	var name string
	var withAnalytic bool

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Estimate the option price with one strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := strategy.New(name, o.cfg.StrategyParams(name))
			if err != nil {
				return err
			}
			in := o.cfg.Inputs()
			res, err := pricing.New().Run(cmd.Context(), in, s)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			lo, hi := res.ConfidenceInterval(1.96)
			fmt.Fprintf(out, "Strategy=%s Type=%s Paths=%d Steps=%d Seed=%d\n",
				res.Strategy, res.Type, res.Paths, res.Steps, res.Seed)
			fmt.Fprintf(out, "Price=%s StdErr=%s 95%%CI=[%s, %s] Elapsed=%s\n",
				pricing.FormatPrice(res.Price, pricing.PriceDecimals),
				pricing.FormatPrice(res.StdErr, pricing.PriceDecimals),
				pricing.FormatPrice(lo, pricing.PriceDecimals),
				pricing.FormatPrice(hi, pricing.PriceDecimals),
				res.Elapsed,
			)
			if withAnalytic {
				ref, err := analytic.Price(in.Params)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Analytic=%s Diff=%s\n",
					pricing.FormatPrice(ref, pricing.PriceDecimals),
					pricing.FormatPrice(res.Price-ref, pricing.PriceDecimals),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "strategy", "vectorized", "Strategy: "+strings.Join(strategy.Names(), ", "))
	cmd.Flags().BoolVar(&withAnalytic, "analytic", false, "Also print the closed-form Black-Scholes price")
	return cmd
}

func newCompareCmd(o *rootOptions) *cobra.Command {
	var names []string
	var outPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several strategies on identical inputs and compare price and running time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var strats []strategy.Strategy
			if len(names) == 0 {
				var err error
				if strats, err = o.cfg.BuildStrategies(); err != nil {
					return err
				}
			} else {
				for _, n := range names {
					s, err := strategy.New(n, o.cfg.StrategyParams(n))
					if err != nil {
						return err
					}
					strats = append(strats, s)
				}
			}

			done := logging.LogDuration(cmd.Context(), "compare finished", "strategies", len(strats))
			cs, err := analysis.Compare(cmd.Context(), pricing.New(), o.cfg.Inputs(), strats)
			if err != nil {
				return err
			}
			done()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-12s %-10s %-10s %-14s %-9s %-10s\n", "rank", "strategy", "price", "std_err", "elapsed", "speedup", "diff")
			for i, c := range analysis.RankBySpeed(cs) {
				fmt.Fprintf(out, "%-4d %-12s %-10s %-10s %-14s %-9.2f %-10.2g\n",
					i+1,
					c.Strategy,
					pricing.FormatPrice(c.Price, pricing.PriceDecimals),
					pricing.FormatPrice(c.StdErr, pricing.PriceDecimals),
					c.Elapsed,
					c.Speedup,
					c.PriceDiff,
				)
			}

			if outPath != "" {
				if err := analysis.WriteComparisonCSV(outPath, cs); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d rows to %s\n", len(cs), outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&names, "strategies", nil, "Comma-separated strategies (default: from config; the first is the baseline)")
	cmd.Flags().StringVar(&outPath, "out", "", "Optional CSV output path")
	return cmd
}

func newPathCmd(o *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Simulate a single GBM path (with its Wiener process) for plotting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pts, err := pricing.New().Path(o.cfg.Inputs())
			if err != nil {
				return err
			}
			if err := pricing.WritePathCSV(outPath, pts); err != nil {
				return err
			}
			last := pts[len(pts)-1]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote %d rows to %s\n", len(pts), outPath)
			fmt.Fprintf(out, "S(T)=%s W(T)=%.6f\n", pricing.FormatPrice(last.Price, pricing.PriceDecimals), last.Wiener)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "results/path.csv", "Output CSV path")
	return cmd
}

func newConvergenceCmd(o *rootOptions) *cobra.Command {
	var name string
	var counts []int
	var outPath string

	cmd := &cobra.Command{
		Use:   "convergence",
		Short: "Re-run one strategy over increasing path counts against the analytic price",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := strategy.New(name, o.cfg.StrategyParams(name))
			if err != nil {
				return err
			}
			for _, n := range counts {
				if n <= 0 {
					return fmt.Errorf("--counts must be positive, got %d", n)
				}
			}
			pts, err := analysis.Convergence(cmd.Context(), pricing.New(), o.cfg.Inputs(), s, counts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s %-10s %-10s %-10s %-10s %-14s\n", "paths", "price", "std_err", "analytic", "abs_err", "elapsed")
			for _, p := range pts {
				fmt.Fprintf(out, "%-10d %-10s %-10s %-10s %-10s %-14s\n",
					p.Paths,
					pricing.FormatPrice(p.Price, pricing.PriceDecimals),
					pricing.FormatPrice(p.StdErr, pricing.PriceDecimals),
					pricing.FormatPrice(p.Analytic, pricing.PriceDecimals),
					pricing.FormatPrice(p.AbsError, pricing.PriceDecimals),
					p.Elapsed,
				)
			}
			if outPath != "" {
				if err := analysis.WriteConvergenceCSV(outPath, pts); err != nil {
					return err
				}
				fmt.Fprintf(out, "Wrote %d rows to %s\n", len(pts), outPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "strategy", "vectorized", "Strategy to sweep")
	cmd.Flags().IntSliceVar(&counts, "counts", []int{1_000, 10_000, 100_000}, "Comma-separated path counts")
	cmd.Flags().StringVar(&outPath, "out", "", "Optional CSV output path")
	return cmd
}

func newStrategiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strategies",
		Short: "List available strategies and their parameters",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			for _, s := range strategy.Catalog() {
				fmt.Fprintf(out, "%s\n  %s\n", s.Name, s.Description)
				for _, p := range s.Parameters {
					fmt.Fprintf(out, "  - %s (%s, default %v): %s\n", p.Name, p.Type, p.Default, p.Description)
				}
			}
		},
	}
}
