package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Direction selects which arcs Degree counts.
type Direction int

const (
	// In counts arcs entering a vertex (column sums).
	In Direction = iota
	// Out counts arcs leaving a vertex (row sums).
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Degree returns the in- or out-degree of every vertex, counting only arcs
// whose other endpoint is active in verts. A nil verts treats every vertex
// as active.
func Degree(a mat.Matrix, dir Direction, verts *mat.VecDense) (*mat.VecDense, error) {
	if dir != In && dir != Out {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirection, dir)
	}

	m, v, err := Validate(a, verts)
	if err != nil {
		return nil, err
	}
	return degree(m, dir, v), nil
}

// InDegree is Degree(a, In, verts).
func InDegree(a mat.Matrix, verts *mat.VecDense) (*mat.VecDense, error) {
	return Degree(a, In, verts)
}

// OutDegree is Degree(a, Out, verts).
func OutDegree(a mat.Matrix, verts *mat.VecDense) (*mat.VecDense, error) {
	return Degree(a, Out, verts)
}

func degree(a mat.Matrix, dir Direction, v mat.Vector) *mat.VecDense {
	n, _ := a.Dims()
	if n == 0 {
		return &mat.VecDense{}
	}
	out := mat.NewVecDense(n, nil)
	if dir == Out {
		out.MulVec(a, v)
	} else {
		out.MulVec(a.T(), v)
	}
	return out
}
