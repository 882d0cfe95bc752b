package strategy

// Info describes a registered strategy for listings.
type Info struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Parameters  []ParameterInfo `yaml:"parameters,omitempty"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"` // "int", "float", "string"
	Description string `yaml:"description"`
	Default     any    `yaml:"default,omitempty"`
}

// Catalog returns every registered strategy in Names() order.
func Catalog() []Info {
	all := map[string]Info{
		"scalar": {
			Name:        "scalar",
			Description: "Element-by-element loops. Builds each path step by step and keeps only its terminal payoff.",
		},
		"vectorized": {
			Name:        "vectorized",
			Description: "Bulk array form. Draws an (M+1)xN normal grid, cumulative-sums log increments along time, exponentiates and scales by S0.",
		},
		"parallel": {
			Name:        "parallel",
			Description: "Scalar recurrence split into fixed-size chunks run on a bounded goroutine pool. Reproducible for a given seed and chunk size.",
			Parameters: []ParameterInfo{
				{
					Name:        "workers",
					Type:        "int",
					Description: "Maximum concurrent chunks (0 = GOMAXPROCS)",
					Default:     0,
				},
				{
					Name:        "chunk_size",
					Type:        "int",
					Description: "Paths per chunk; changing it changes the random streams",
					Default:     defaultChunkSize,
				},
			},
		},
	}

	names := Names()
	out := make([]Info, 0, len(names))
	for _, n := range names {
		if info, ok := all[n]; ok {
			out = append(out, info)
		} else {
			out = append(out, Info{Name: n})
		}
	}
	return out
}
