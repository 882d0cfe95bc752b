package model

import (
	"fmt"
	"strings"
)

// OptionType selects the European payoff.
// Keep these values stable; they appear in config files and CSV output.
type OptionType string

const (
	OptionCall OptionType = "CALL"
	OptionPut  OptionType = "PUT"
)

// ParseOptionType accepts CALL/PUT in any case. Empty means CALL.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(OptionCall):
		return OptionCall, nil
	case string(OptionPut):
		return OptionPut, nil
	default:
		return "", fmt.Errorf("unsupported option type %q", s)
	}
}

// Payoff is max(S-K, 0) for a call and max(K-S, 0) for a put.
// An empty OptionType prices a call.
func (t OptionType) Payoff(terminal, strike float64) float64 {
	var v float64
	if t == OptionPut {
		v = strike - terminal
	} else {
		v = terminal - strike
	}
	if v < 0 {
		return 0
	}
	return v
}

func (t OptionType) String() string {
	if t == "" {
		return string(OptionCall)
	}
	return string(t)
}
