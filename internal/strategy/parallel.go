package strategy

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"mc-option-pricer/internal/model"
)

const defaultChunkSize = 4096

// ParallelStrategy runs the scalar recurrence on fixed-size chunks of paths
// across a bounded number of goroutines.
//
// One seed per chunk is drawn from the caller's source before any work starts,
// and each chunk owns its generator. The output depends on the seed and
// ChunkSize only, never on Workers or scheduling.
type ParallelStrategy struct {
	Workers   int // 0 = runtime.GOMAXPROCS(0)
	ChunkSize int // 0 = defaultChunkSize
}

func (s *ParallelStrategy) Name() string { return "parallel" }

func (s *ParallelStrategy) Payoffs(ctx context.Context, p model.SimulationParams, src model.NormalSource) ([]float64, error) {
	chunk := s.ChunkSize
	if chunk <= 0 {
		chunk = defaultChunkSize
	}
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	payoffs := make([]float64, p.Paths)
	nChunks := (p.Paths + chunk - 1) / chunk
	seeds := make([]int64, nChunks)
	for i := range seeds {
		seeds[i] = src.Int63()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < nChunks; c++ {
		start := c * chunk
		end := min(start+chunk, p.Paths)
		seed := seeds[c]
		g.Go(func() error {
			return scalarKernel(gctx, p, model.NewSource(seed), payoffs[start:end])
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return payoffs, nil
}
