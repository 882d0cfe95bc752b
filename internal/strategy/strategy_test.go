package strategy_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"mc-option-pricer/internal/model"
	"mc-option-pricer/internal/pricing"
	"mc-option-pricer/internal/strategy"
)

func exampleParams(paths int) model.SimulationParams {
	return model.SimulationParams{
		InitialPrice: 100,
		Strike:       105,
		Maturity:     1,
		Rate:         0.05,
		Volatility:   0.2,
		Steps:        50,
		Paths:        paths,
		Type:         model.OptionCall,
	}
}

func allStrategies() []strategy.Strategy {
	return []strategy.Strategy{
		&strategy.ScalarStrategy{},
		&strategy.VectorizedStrategy{},
		&strategy.ParallelStrategy{Workers: 4, ChunkSize: 512},
	}
}

func price(t *testing.T, s strategy.Strategy, p model.SimulationParams, seed int64) float64 {
	t.Helper()
	res, err := pricing.New().Run(context.Background(), model.Inputs{Params: p, Seed: seed}, s)
	if err != nil {
		t.Fatalf("%s: Run() error: %v", s.Name(), err)
	}
	return res.Price
}

func TestPayoffCount(t *testing.T) {
	p := exampleParams(1234)
	for _, s := range allStrategies() {
		payoffs, err := s.Payoffs(context.Background(), p, model.NewSource(1))
		if err != nil {
			t.Fatalf("%s: %v", s.Name(), err)
		}
		if len(payoffs) != p.Paths {
			t.Errorf("%s: got %d payoffs, want %d", s.Name(), len(payoffs), p.Paths)
		}
		for i, v := range payoffs {
			if v < 0 || math.IsNaN(v) {
				t.Fatalf("%s: payoff[%d] = %v", s.Name(), i, v)
			}
		}
	}
}

// With the same seed, scalar and vectorized consume the same draws per path,
// so their payoffs agree up to floating-point rounding.
func TestScalarAndVectorizedAgreeForSameSeed(t *testing.T) {
	p := exampleParams(2000)

	a, err := (&strategy.ScalarStrategy{}).Payoffs(context.Background(), p, model.NewSource(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := (&strategy.VectorizedStrategy{}).Payoffs(context.Background(), p, model.NewSource(7))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		tol := 1e-9 * math.Max(1, math.Abs(a[i]))
		if math.Abs(a[i]-b[i]) > tol {
			t.Fatalf("path %d: scalar %v, vectorized %v", i, a[i], b[i])
		}
	}
}

func TestStrategiesConvergeWithIndependentSeeds(t *testing.T) {
	if testing.Short() {
		t.Skip("100k-path runs")
	}
	p := exampleParams(100_000)

	scalar := price(t, &strategy.ScalarStrategy{}, p, 1)
	vectorized := price(t, &strategy.VectorizedStrategy{}, p, 2)
	parallel := price(t, &strategy.ParallelStrategy{}, p, 3)

	if d := math.Abs(scalar - vectorized); d >= 0.5 {
		t.Errorf("scalar %v vs vectorized %v: diff %v", scalar, vectorized, d)
	}
	if d := math.Abs(scalar - parallel); d >= 0.5 {
		t.Errorf("scalar %v vs parallel %v: diff %v", scalar, parallel, d)
	}
}

func TestPriceDoesNotIncreaseWithStrike(t *testing.T) {
	strikes := []float64{60, 80, 95, 100, 105, 110, 125, 150, 200}
	for _, s := range allStrategies() {
		prev := math.Inf(1)
		for _, k := range strikes {
			p := exampleParams(5000)
			p.Strike = k
			got := price(t, s, p, 11)
			if got > prev {
				t.Errorf("%s: price(K=%v) = %v > previous %v", s.Name(), k, got, prev)
			}
			prev = got
		}
	}
}

func TestZeroVolatilityIsDeterministic(t *testing.T) {
	for _, k := range []float64{0, 90, 100, 105, 110} {
		for _, typ := range []model.OptionType{model.OptionCall, model.OptionPut} {
			p := exampleParams(1000)
			p.Volatility = 0
			p.Strike = k
			p.Type = typ

			forward := p.InitialPrice * math.Exp(p.Rate*p.Maturity)
			want := math.Exp(-p.Rate*p.Maturity) * typ.Payoff(forward, k)

			for _, s := range allStrategies() {
				got := price(t, s, p, 5)
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("%s %s K=%v: price %v, want %v", s.Name(), typ, k, got, want)
				}
			}
		}
	}
}

func TestPriceIsNonNegative(t *testing.T) {
	for _, typ := range []model.OptionType{model.OptionCall, model.OptionPut} {
		for seed := int64(0); seed < 5; seed++ {
			p := exampleParams(500)
			p.Type = typ
			p.Strike = 250 // deep out of the money for the call
			if typ == model.OptionPut {
				p.Strike = 20
			}
			for _, s := range allStrategies() {
				if got := price(t, s, p, seed); got < 0 {
					t.Errorf("%s %s seed=%d: price %v < 0", s.Name(), typ, seed, got)
				}
			}
		}
	}
}

func TestSameSeedIsBitIdentical(t *testing.T) {
	p := exampleParams(3000)
	for _, s := range allStrategies() {
		a := price(t, s, p, 99)
		b := price(t, s, p, 99)
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Errorf("%s: %v != %v", s.Name(), a, b)
		}
		if c := price(t, s, p, 100); c == a {
			t.Errorf("%s: seeds 99 and 100 gave the same price %v", s.Name(), a)
		}
	}
}

func TestParallelIndependentOfWorkers(t *testing.T) {
	p := exampleParams(5000)
	var want []float64
	for _, workers := range []int{1, 2, 3, 8} {
		s := &strategy.ParallelStrategy{Workers: workers, ChunkSize: 700}
		got, err := s.Payoffs(context.Background(), p, model.NewSource(21))
		if err != nil {
			t.Fatal(err)
		}
		if want == nil {
			want = got
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: payoff[%d] = %v, want %v", workers, i, got[i], want[i])
			}
		}
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := exampleParams(10_000)
	for _, s := range allStrategies() {
		_, err := s.Payoffs(ctx, p, model.NewSource(1))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s: err = %v, want context.Canceled", s.Name(), err)
		}
	}
}

func TestNew(t *testing.T) {
	for _, name := range strategy.Names() {
		s, err := strategy.New(name, nil)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("New(%q).Name() = %q", name, s.Name())
		}
	}

	if _, err := strategy.New("quantum", nil); !errors.Is(err, strategy.ErrUnknownStrategy) {
		t.Errorf("New(quantum) err = %v, want ErrUnknownStrategy", err)
	}

	s, err := strategy.New("parallel", map[string]any{"workers": 3, "chunk_size": 1024.0})
	if err != nil {
		t.Fatal(err)
	}
	ps := s.(*strategy.ParallelStrategy)
	if ps.Workers != 3 || ps.ChunkSize != 1024 {
		t.Errorf("parallel params = %+v", ps)
	}

	if _, err := strategy.New("parallel", map[string]any{"workers": -1}); err == nil {
		t.Error("New(parallel, workers=-1) succeeded, want error")
	}
}

func TestCatalogCoversRegistry(t *testing.T) {
	names := strategy.Names()
	cat := strategy.Catalog()
	if len(cat) != len(names) {
		t.Fatalf("catalog has %d entries, registry %d", len(cat), len(names))
	}
	for i, info := range cat {
		if info.Name != names[i] {
			t.Errorf("catalog[%d] = %q, want %q", i, info.Name, names[i])
		}
		if info.Description == "" {
			t.Errorf("%s: empty description", info.Name)
		}
	}
}
