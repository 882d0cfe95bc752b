package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"mc-option-pricer/internal/config"
	"mc-option-pricer/internal/logging"
	"mc-option-pricer/internal/model"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// rootOptions holds persistent flags and the config they resolve to.
type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	s0       float64
	strike   float64
	maturity float64
	rate     float64
	vol      float64
	steps    int
	paths    int
	seed     int64
	optType  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	def := config.Default()

	root := &cobra.Command{
		Use:   "mcprice",
		Short: "Monte Carlo pricing of European options under geometric Brownian motion",
		Long: `mcprice estimates European option prices by simulating geometric Brownian
motion paths, and compares a scalar (loop) estimator with a vectorized
(bulk array) one.

Examples:
  mcprice price --strategy scalar --analytic
  mcprice compare --strategies scalar,vectorized,parallel --out results/compare.csv
  mcprice path --out results/path.csv
  mcprice convergence --counts 1000,10000,100000`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.resolve(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "Path to YAML config (defaults to the built-in example)")
	pf.StringVar(&o.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&o.logFormat, "log-format", "", "Log format: text or json")

	pf.Float64Var(&o.s0, "s0", def.Params.InitialPrice, "Initial asset price")
	pf.Float64Var(&o.strike, "strike", def.Params.Strike, "Strike price")
	pf.Float64Var(&o.maturity, "maturity", def.Params.Maturity, "Time to maturity in years")
	pf.Float64Var(&o.rate, "rate", def.Params.Rate, "Risk-free rate (continuous, annual)")
	pf.Float64Var(&o.vol, "volatility", def.Params.Volatility, "Volatility (annual)")
	pf.IntVar(&o.steps, "steps", def.Params.Steps, "Time steps per path")
	pf.IntVar(&o.paths, "paths", def.Params.Paths, "Number of simulated paths")
	pf.Int64Var(&o.seed, "seed", def.Seed, "Random seed")
	pf.StringVar(&o.optType, "type", def.Params.OptionType, "Option type: CALL or PUT")

	root.AddCommand(
		newPriceCmd(o),
		newCompareCmd(o),
		newPathCmd(o),
		newConvergenceCmd(o),
		newStrategiesCmd(),
	)
	return root
}

// resolve loads the config, applies explicitly set flags on top and
// installs the logger.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("s0") {
		cfg.Params.InitialPrice = o.s0
	}
	if flags.Changed("strike") {
		cfg.Params.Strike = o.strike
	}
	if flags.Changed("maturity") {
		cfg.Params.Maturity = o.maturity
	}
	if flags.Changed("rate") {
		cfg.Params.Rate = o.rate
	}
	if flags.Changed("volatility") {
		cfg.Params.Volatility = o.vol
	}
	if flags.Changed("steps") {
		cfg.Params.Steps = o.steps
	}
	if flags.Changed("paths") {
		cfg.Params.Paths = o.paths
	}
	if flags.Changed("seed") {
		cfg.Seed = o.seed
	}
	if flags.Changed("type") {
		t, err := model.ParseOptionType(o.optType)
		if err != nil {
			return err
		}
		cfg.Params.OptionType = string(t)
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Logging.Format = o.logFormat
	}

	if err := logging.Init(cfg.Logging); err != nil {
		return err
	}
	if err := cfg.Params.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("params invalid: %w", err)
	}
	o.cfg = cfg
	return nil
}
