package model

// Path is one simulated trajectory: Steps+1 prices starting at the initial price.
type Path []float64

// Terminal returns the price at maturity, or 0 for an empty path.
func (p Path) Terminal() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// PathPoint is one row of a single plotted path.
// Wiener is the standard Brownian motion W(t) driving the price.
type PathPoint struct {
	Step   int
	Time   float64
	Wiener float64
	Price  float64
}
