package pricing

import (
	"time"

	"mc-option-pricer/internal/model"
)

// Result is the output of one estimator run.
type Result struct {
	Strategy string
	Type     model.OptionType

	// Price is the discounted mean payoff.
	Price float64
	// StdErr is the standard error of Price.
	StdErr float64

	MeanPayoff     float64
	DiscountFactor float64

	Paths int
	Steps int
	Seed  int64

	// Elapsed covers payoff generation and averaging, not validation.
	Elapsed time.Duration
}

// ConfidenceInterval returns the normal-approximation interval
// Price ± z·StdErr (z = 1.96 for 95%).
func (r *Result) ConfidenceInterval(z float64) (lo, hi float64) {
	return r.Price - z*r.StdErr, r.Price + z*r.StdErr
}
