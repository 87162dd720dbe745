package graph

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// RandomDirected returns a uniformly random directed graph with v vertices
// and exactly e distinct arcs and no self loops (the G(n,m) model).
// WithSeed makes the result reproducible.
func RandomDirected(v, e int, opts ...Option) (*simple.WeightedDirectedGraph, error) {
	if v < 0 || e < 0 {
		return nil, fmt.Errorf("%w: v=%d e=%d", ErrNegativeSize, v, e)
	}
	maxArcs := v * (v - 1)
	if e > maxArcs {
		return nil, fmt.Errorf("%w: %d edges, at most %d for %d vertices", ErrTooManyEdges, e, maxArcs, v)
	}

	cfg := newConfig(opts...)
	seed := rand.Uint64()
	if cfg.seed != nil {
		seed = *cfg.seed
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	if v == 0 {
		return simple.NewWeightedDirectedGraph(0, 0), nil
	}

	a := mat.NewDense(v, v, nil)
	for _, idx := range sampleDistinct(rng, maxArcs, e) {
		from := idx / (v - 1)
		to := idx % (v - 1)
		if to >= from {
			to++
		}
		a.Set(from, to, 1)
	}

	cfg.logger.Debug().Int("vertices", v).Int("edges", e).Uint64("seed", seed).Msg("generated random graph")
	return FromMatrix(a)
}

// sampleDistinct draws k distinct integers from [0, n) using Floyd's
// algorithm and returns them sorted.
func sampleDistinct(rng *rand.Rand, n, k int) []int {
	chosen := make(map[int]struct{}, k)
	for j := n - k; j < n; j++ {
		t := rng.IntN(j + 1)
		if _, ok := chosen[t]; ok {
			chosen[j] = struct{}{}
		} else {
			chosen[t] = struct{}{}
		}
	}

	out := make([]int, 0, k)
	for idx := range chosen {
		out = append(out, idx)
	}
	slices.Sort(out)
	return out
}
