package graph

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/utkarsh5026/kinetic/pool"
)

// Subgraph is one enumerated subgraph: its adjacency matrix restricted to
// its own vertices, and the indices of those vertices in the parent graph.
type Subgraph struct {
	Adjacency *mat.Dense
	Vertices  []int
}

// Weight returns the total arc weight of the subgraph.
func (s Subgraph) Weight() float64 {
	if s.Adjacency == nil || s.Adjacency.IsEmpty() {
		return 0
	}
	return mat.Sum(s.Adjacency)
}

// memo records visited enumeration states.
type memo interface {
	// visit marks key as seen and reports whether it was new.
	visit(key string) bool
}

type mapMemo map[string]struct{}

func (m mapMemo) visit(key string) bool {
	if _, ok := m[key]; ok {
		return false
	}
	m[key] = struct{}{}
	return true
}

type syncMemo struct{ m sync.Map }

func (s *syncMemo) visit(key string) bool {
	_, loaded := s.m.LoadOrStore(key, struct{}{})
	return !loaded
}

type enumerator struct {
	limit    float64
	required []int
	seen     memo
}

// IterateSubgraphs enumerates every subgraph of a that can be reached by
// repeatedly deleting a single arc and then stripping sinks and sources
// (see FilterSinksSources). A subgraph is reported when its total arc weight
// w satisfies 1 < w < k, where k comes from WithMaxEdges and defaults to the
// weight of a plus one. Each distinct subgraph is reported once, in
// depth-first order with arcs taken in row-major order.
func IterateSubgraphs(a mat.Matrix, opts ...Option) ([]Subgraph, error) {
	cfg := newConfig(opts...)
	m, e, err := newEnumerator(a, cfg, mapMemo{})
	if err != nil || m == nil {
		return nil, err
	}

	subs, err := e.walk(context.Background(), m)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug().Int("subgraphs", len(subs)).Msg("enumeration finished")
	return subs, nil
}

// IterateSubgraphsParallel returns the same subgraphs as IterateSubgraphs.
// The branches below the root are processed concurrently on a worker pool
// sharing one visited set, so the order of the result is unspecified.
func IterateSubgraphsParallel(ctx context.Context, a mat.Matrix, opts ...Option) ([]Subgraph, error) {
	cfg := newConfig(opts...)
	m, e, err := newEnumerator(a, cfg, &syncMemo{})
	if err != nil || m == nil {
		return nil, err
	}

	root, v := filterSinksSources(m, ones(rows(m)), e.required)
	if !e.seen.visit(stateKey(root, v)) {
		return nil, nil
	}

	var subs []Subgraph
	if sub, ok := e.emit(root, v); ok {
		subs = append(subs, sub)
	}

	branches := arcs(root)
	wp := pool.NewWorkerPool[[2]int, []Subgraph](pool.WithWorkerCount(cfg.workers))
	results, err := wp.Process(ctx, branches, func(ctx context.Context, arc [2]int) ([]Subgraph, error) {
		return e.walk(ctx, without(root, arc))
	})
	if err != nil {
		return nil, fmt.Errorf("enumerate subgraphs: %w", err)
	}

	for _, r := range results {
		subs = append(subs, r...)
	}
	cfg.logger.Debug().
		Int("branches", len(branches)).
		Int("workers", wp.Workers()).
		Int("subgraphs", len(subs)).
		Msg("parallel enumeration finished")
	return subs, nil
}

// newEnumerator validates a and the options. A nil matrix with a nil error
// means a has no vertices and there is nothing to enumerate.
func newEnumerator(a mat.Matrix, cfg *config, seen memo) (*mat.Dense, *enumerator, error) {
	m, _, err := Validate(a, nil)
	if err != nil {
		return nil, nil, err
	}

	n := rows(m)
	if n == 0 {
		return nil, nil, nil
	}
	for _, r := range cfg.required {
		if r < 0 || r >= n {
			return nil, nil, fmt.Errorf("%w: required vertex %d, graph has %d", ErrVertexRange, r, n)
		}
	}

	limit := cfg.maxEdges
	if limit == 0 {
		limit = TotalWeight(m) + 1
	}
	logEnumeration(cfg.logger, n, limit, cfg.required)

	return m, &enumerator{limit: limit, required: cfg.required, seen: seen}, nil
}

func logEnumeration(l zerolog.Logger, n int, limit float64, required []int) {
	l.Debug().
		Int("vertices", n).
		Float64("limit", limit).
		Ints("required", required).
		Msg("enumerating subgraphs")
}

func (e *enumerator) walk(ctx context.Context, m *mat.Dense) ([]Subgraph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, v := filterSinksSources(m, ones(rows(m)), e.required)
	if !e.seen.visit(stateKey(m, v)) {
		return nil, nil
	}

	var subs []Subgraph
	if sub, ok := e.emit(m, v); ok {
		subs = append(subs, sub)
	}

	for _, arc := range arcs(m) {
		more, err := e.walk(ctx, without(m, arc))
		if err != nil {
			return nil, err
		}
		subs = append(subs, more...)
	}
	return subs, nil
}

func (e *enumerator) emit(m *mat.Dense, v *mat.VecDense) (Subgraph, bool) {
	w := TotalWeight(m)
	if w <= 1 || w >= e.limit {
		return Subgraph{}, false
	}
	pruned, active := prune(m, v)
	return Subgraph{Adjacency: pruned, Vertices: active}, true
}

// arcs lists the non-zero entries of m in row-major order.
func arcs(m *mat.Dense) [][2]int {
	n := rows(m)
	var out [][2]int
	for i := range n {
		for j := range n {
			if m.At(i, j) != 0 {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// without returns a copy of m with every arc from arc[0] to arc[1] removed.
func without(m *mat.Dense, arc [2]int) *mat.Dense {
	c := mat.DenseCopyOf(m)
	c.Set(arc[0], arc[1], 0)
	return c
}

func rows(m mat.Matrix) int {
	r, _ := m.Dims()
	return r
}

// stateKey encodes a matrix and its active-vertex vector as a map key.
func stateKey(m *mat.Dense, v *mat.VecDense) string {
	n := rows(m)
	buf := make([]byte, 0, 8*(n*n+n))
	for i := range n {
		for j := range n {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(m.At(i, j)))
		}
	}
	for i := range n {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v.AtVec(i)))
	}
	return string(buf)
}
