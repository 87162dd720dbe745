package graph

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

func vertexSets(subs []Subgraph) [][]int {
	out := make([][]int, len(subs))
	for i, s := range subs {
		out[i] = s.Vertices
	}
	return out
}

func TestIterateSubgraphs_Basic(t *testing.T) {
	a := dense([][]float64{
		{0, 1},
		{1, 0},
	})

	subs, err := IterateSubgraphs(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subgraph, got %d", len(subs))
	}
	chk.Ints(t, "vertices", subs[0].Vertices, []int{0, 1})
	chk.Float64(t, "weight", 0, subs[0].Weight(), 2)
}

func TestIterateSubgraphs_Path(t *testing.T) {
	//chk.Verbose = true
	chk.PrintTitle("IterateSubgraphs")

	tests := []struct {
		name string
		opts []Option
		want [][]int
	}{
		{
			name: "all",
			want: [][]int{{0, 1, 2}, {1, 2}, {0, 1}},
		},
		{
			name: "required vertex",
			opts: []Option{WithRequiredVertices(0)},
			want: [][]int{{0, 1, 2}, {0, 1}},
		},
		{
			name: "max edges",
			opts: []Option{WithMaxEdges(3)},
			want: [][]int{{1, 2}, {0, 1}},
		},
		{
			name: "required and max edges",
			opts: []Option{WithMaxEdges(3), WithRequiredVertices(2)},
			want: [][]int{{1, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs, err := IterateSubgraphs(path3(), tt.opts...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got := vertexSets(subs)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				chk.Ints(t, fmt.Sprintf("subgraph %d", i), got[i], tt.want[i])
			}
		})
	}
}

func TestIterateSubgraphs_PrunedAdjacency(t *testing.T) {
	subs, err := IterateSubgraphs(path3(), WithMaxEdges(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range subs {
		chk.Deep2(t, "adjacency", 0, grid(s.Adjacency), [][]float64{{0, 1}, {1, 0}})
	}
}

func TestIterateSubgraphs_RequiredVerticesIncluded(t *testing.T) {
	g, err := RandomDirected(6, 12, WithSeed(11))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	required := []int{0}
	subs, err := IterateSubgraphs(ToMatrix(g), WithRequiredVertices(required...))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range subs {
		for _, r := range required {
			if !slices.Contains(s.Vertices, r) {
				t.Errorf("subgraph %v is missing required vertex %d", s.Vertices, r)
			}
		}
		if s.Weight() <= 1 {
			t.Errorf("subgraph %v has weight %v", s.Vertices, s.Weight())
		}
	}
}

func TestIterateSubgraphs_MultiArcs(t *testing.T) {
	// A double arc 0 -> 1 disappears in one step, as both copies sit in one entry.
	a := dense([][]float64{
		{0, 2},
		{1, 0},
	})
	subs, err := IterateSubgraphs(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 1 {
		t.Fatalf("expected 1 subgraph, got %d", len(subs))
	}
	chk.Float64(t, "weight", 0, subs[0].Weight(), 3)
}

func TestIterateSubgraphs_Errors(t *testing.T) {
	subs, err := IterateSubgraphs(&mat.Dense{})
	if err != nil || subs != nil {
		t.Errorf("expected no subgraphs for empty graph, got %v, %v", subs, err)
	}

	_, err = IterateSubgraphs(mat.NewDense(2, 3, nil))
	if !errors.Is(err, ErrNotSquare) {
		t.Errorf("expected ErrNotSquare, got %v", err)
	}

	_, err = IterateSubgraphs(path3(), WithRequiredVertices(5))
	if !errors.Is(err, ErrVertexRange) {
		t.Errorf("expected ErrVertexRange, got %v", err)
	}
}

func TestIterateSubgraphsParallel_MatchesSequential(t *testing.T) {
	g, err := RandomDirected(6, 12, WithSeed(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := ToMatrix(g)

	for _, opts := range [][]Option{
		nil,
		{WithMaxEdges(8)},
		{WithRequiredVertices(1), WithMaxEdges(10)},
	} {
		seq, err := IterateSubgraphs(a, opts...)
		if err != nil {
			t.Fatalf("sequential: %v", err)
		}
		par, err := IterateSubgraphsParallel(context.Background(), a, append(opts, WithWorkers(4))...)
		if err != nil {
			t.Fatalf("parallel: %v", err)
		}

		if len(par) != len(seq) {
			t.Fatalf("expected %d subgraphs, got %d", len(seq), len(par))
		}
		want := make(map[string]bool, len(seq))
		for _, s := range seq {
			want[subgraphKey(s)] = true
		}
		for _, s := range par {
			if !want[subgraphKey(s)] {
				t.Errorf("unexpected subgraph %v", s.Vertices)
			}
		}
	}
}

func TestIterateSubgraphsParallel_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := IterateSubgraphsParallel(ctx, path3())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func subgraphKey(s Subgraph) string {
	return fmt.Sprint(s.Vertices, grid(s.Adjacency))
}
