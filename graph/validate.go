package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Validate checks that a is a square matrix and that verts, when given, has
// one entry per vertex. It returns a copy of a and either a copy of verts
// or, when verts is nil, a vector with every vertex active. A 0x0 matrix is
// the empty graph and yields an empty matrix and vector.
func Validate(a mat.Matrix, verts *mat.VecDense) (*mat.Dense, *mat.VecDense, error) {
	n, err := order(a)
	if err != nil {
		return nil, nil, err
	}
	if n == 0 {
		if verts != nil && verts.Len() != 0 {
			return nil, nil, fmt.Errorf("%w: got %d entries, want 0", ErrVertsShape, verts.Len())
		}
		return &mat.Dense{}, &mat.VecDense{}, nil
	}

	if verts == nil {
		return mat.DenseCopyOf(a), ones(n), nil
	}
	if verts.Len() != n {
		return nil, nil, fmt.Errorf("%w: got %d entries, want %d", ErrVertsShape, verts.Len(), n)
	}

	v := mat.NewVecDense(n, nil)
	v.CopyVec(verts)
	return mat.DenseCopyOf(a), v, nil
}

// order returns the number of vertices of a square adjacency matrix.
func order(a mat.Matrix) (int, error) {
	r, c := a.Dims()
	if r != c {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, r, c)
	}
	return r, nil
}

func ones(n int) *mat.VecDense {
	v := mat.NewVecDense(n, nil)
	for i := range n {
		v.SetVec(i, 1)
	}
	return v
}

// TotalWeight returns the sum of all entries of a, i.e. the number of arcs
// counted with multiplicity.
func TotalWeight(a mat.Matrix) float64 {
	return mat.Sum(a)
}
