package model

import (
	"errors"
	"math"
	"testing"
)

func exampleParams() SimulationParams {
	return SimulationParams{
		InitialPrice: 100,
		Strike:       105,
		Maturity:     1,
		Rate:         0.05,
		Volatility:   0.2,
		Steps:        50,
		Paths:        1000,
		Type:         OptionCall,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *SimulationParams)
		wantErr bool
	}{
		{"example", func(p *SimulationParams) {}, false},
		{"zero volatility", func(p *SimulationParams) { p.Volatility = 0 }, false},
		{"zero strike", func(p *SimulationParams) { p.Strike = 0 }, false},
		{"negative rate", func(p *SimulationParams) { p.Rate = -0.01 }, false},
		{"empty type", func(p *SimulationParams) { p.Type = "" }, false},
		{"put", func(p *SimulationParams) { p.Type = OptionPut }, false},
		{"negative volatility", func(p *SimulationParams) { p.Volatility = -0.2 }, true},
		{"zero maturity", func(p *SimulationParams) { p.Maturity = 0 }, true},
		{"negative maturity", func(p *SimulationParams) { p.Maturity = -1 }, true},
		{"zero steps", func(p *SimulationParams) { p.Steps = 0 }, true},
		{"negative paths", func(p *SimulationParams) { p.Paths = -5 }, true},
		{"zero paths", func(p *SimulationParams) { p.Paths = 0 }, true},
		{"zero initial price", func(p *SimulationParams) { p.InitialPrice = 0 }, true},
		{"negative strike", func(p *SimulationParams) { p.Strike = -1 }, true},
		{"nan rate", func(p *SimulationParams) { p.Rate = math.NaN() }, true},
		{"infinite maturity", func(p *SimulationParams) { p.Maturity = math.Inf(1) }, true},
		{"unknown type", func(p *SimulationParams) { p.Type = "BINARY" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := exampleParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidParams) {
					t.Fatalf("Validate() = %v, want ErrInvalidParams", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestDerivedTerms(t *testing.T) {
	p := exampleParams()

	if got, want := p.Dt(), 0.02; math.Abs(got-want) > 1e-15 {
		t.Errorf("Dt() = %v, want %v", got, want)
	}
	if got, want := p.StepDrift(), (0.05-0.5*0.04)*0.02; math.Abs(got-want) > 1e-15 {
		t.Errorf("StepDrift() = %v, want %v", got, want)
	}
	if got, want := p.StepDiffusion(), 0.2*math.Sqrt(0.02); math.Abs(got-want) > 1e-15 {
		t.Errorf("StepDiffusion() = %v, want %v", got, want)
	}
	if got, want := p.DiscountFactor(), math.Exp(-0.05); got != want {
		t.Errorf("DiscountFactor() = %v, want %v", got, want)
	}
}

func TestNextWithoutVolatilityGrowsAtRate(t *testing.T) {
	p := exampleParams()
	p.Volatility = 0

	price := p.InitialPrice
	for i := 0; i < p.Steps; i++ {
		price = p.Next(price, 3.7)
	}
	want := p.InitialPrice * math.Exp(p.Rate*p.Maturity)
	if math.Abs(price-want) > 1e-9 {
		t.Fatalf("terminal = %v, want %v", price, want)
	}
}

func TestPayoff(t *testing.T) {
	tests := []struct {
		typ      OptionType
		terminal float64
		want     float64
	}{
		{OptionCall, 110, 5},
		{OptionCall, 100, 0},
		{OptionCall, 105, 0},
		{"", 120, 15},
		{OptionPut, 100, 5},
		{OptionPut, 110, 0},
	}
	for _, tt := range tests {
		p := exampleParams()
		p.Type = tt.typ
		if got := p.Payoff(tt.terminal); got != tt.want {
			t.Errorf("%s Payoff(%v) = %v, want %v", tt.typ, tt.terminal, got, tt.want)
		}
	}
}

func TestParseOptionType(t *testing.T) {
	for in, want := range map[string]OptionType{
		"":       OptionCall,
		"call":   OptionCall,
		" CALL ": OptionCall,
		"Put":    OptionPut,
	} {
		got, err := ParseOptionType(in)
		if err != nil || got != want {
			t.Errorf("ParseOptionType(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseOptionType("straddle"); err == nil {
		t.Error("ParseOptionType(straddle) succeeded, want error")
	}
}

func TestPathTerminal(t *testing.T) {
	if got := (Path{100, 101, 99.5}).Terminal(); got != 99.5 {
		t.Errorf("Terminal() = %v, want 99.5", got)
	}
	if got := (Path{}).Terminal(); got != 0 {
		t.Errorf("empty Terminal() = %v, want 0", got)
	}
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 100; i++ {
		if x, y := a.NormFloat64(), b.NormFloat64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}
