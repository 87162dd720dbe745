package graph

import (
	"fmt"
	"slices"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/mat"
)

// Vertex is a graph node with an optional display label.
type Vertex struct {
	id    int64
	label string
}

// NewVertex returns a vertex with the given ID and label.
func NewVertex(id int64, label string) Vertex {
	return Vertex{id: id, label: label}
}

func (v Vertex) ID() int64 { return v.id }

// Label returns the vertex label, or its ID when it has none.
func (v Vertex) Label() string {
	if v.label == "" {
		return strconv.FormatInt(v.id, 10)
	}
	return v.label
}

// DOTID implements dot.Node.
func (v Vertex) DOTID() string { return v.Label() }

// Arc is a weighted directed edge. Its weight is the arc multiplicity.
type Arc struct {
	F, T graph.Node
	W    float64
}

func (a Arc) From() graph.Node         { return a.F }
func (a Arc) To() graph.Node           { return a.T }
func (a Arc) Weight() float64          { return a.W }
func (a Arc) ReversedEdge() graph.Edge { return Arc{F: a.T, T: a.F, W: a.W} }

// Attributes implements encoding.Attributer so DOT output shows multiplicities.
func (a Arc) Attributes() []encoding.Attribute {
	if a.W == 1 {
		return nil
	}
	return []encoding.Attribute{{Key: "label", Value: strconv.FormatFloat(a.W, 'g', -1, 64)}}
}

// ToMatrix returns the adjacency matrix of g with vertices ordered by ID.
// Arcs of a weighted graph contribute their weight, all others 1.
// A graph without nodes yields an empty matrix.
func ToMatrix(g graph.Directed) *mat.Dense {
	nodes := graph.NodesOf(g.Nodes())
	if len(nodes) == 0 {
		return &mat.Dense{}
	}
	slices.SortFunc(nodes, func(a, b graph.Node) int {
		switch {
		case a.ID() < b.ID():
			return -1
		case a.ID() > b.ID():
			return 1
		}
		return 0
	})

	index := make(map[int64]int, len(nodes))
	for i, n := range nodes {
		index[n.ID()] = i
	}

	wg, weighted := g.(graph.Weighted)
	m := mat.NewDense(len(nodes), len(nodes), nil)
	for _, u := range nodes {
		to := g.From(u.ID())
		for to.Next() {
			v := to.Node()
			w := 1.0
			if weighted {
				w, _ = wg.Weight(u.ID(), v.ID())
			}
			m.Set(index[u.ID()], index[v.ID()], w)
		}
	}
	return m
}

// FromMatrix builds a weighted directed graph from an adjacency matrix.
// Vertex i gets ID i and, when labels are given, labels[i]. Non-zero
// diagonal entries are rejected.
func FromMatrix(a mat.Matrix, labels ...string) (*simple.WeightedDirectedGraph, error) {
	g := simple.NewWeightedDirectedGraph(0, 0)

	r, c := a.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	if len(labels) != 0 && len(labels) != r {
		return nil, fmt.Errorf("%w: %d labels for %d vertices", ErrLabels, len(labels), r)
	}

	vs := make([]Vertex, r)
	for i := range r {
		vs[i] = Vertex{id: int64(i)}
		if len(labels) != 0 {
			vs[i].label = labels[i]
		}
		g.AddNode(vs[i])
	}

	for i := range r {
		for j := range r {
			w := a.At(i, j)
			if w == 0 {
				continue
			}
			if i == j {
				return nil, fmt.Errorf("%w: vertex %d", ErrSelfLoop, i)
			}
			g.SetWeightedEdge(Arc{F: vs[i], T: vs[j], W: w})
		}
	}
	return g, nil
}
