package graph

import (
	"gonum.org/v1/gonum/mat"
)

// ZeroRowsAndCols clears row i and column i of m for every i where v[i] is
// zero. With inPlace the matrix is modified and returned; otherwise a copy
// is returned and m is left untouched.
func ZeroRowsAndCols(m *mat.Dense, v mat.Vector, inPlace bool) *mat.Dense {
	if m.IsEmpty() {
		if inPlace {
			return m
		}
		return &mat.Dense{}
	}
	if !inPlace {
		m = mat.DenseCopyOf(m)
	}
	n, _ := m.Dims()
	for i := range min(n, v.Len()) {
		if v.AtVec(i) != 0 {
			continue
		}
		for j := range n {
			m.Set(i, j, 0)
			m.Set(j, i, 0)
		}
	}
	return m
}

// RequiredActive reports whether every vertex in required is active in
// verts. Indices outside verts count as inactive.
func RequiredActive(verts mat.Vector, required ...int) bool {
	for _, r := range required {
		if r < 0 || r >= verts.Len() || verts.AtVec(r) == 0 {
			return false
		}
	}
	return true
}

// FilterSinksSources repeatedly deactivates every vertex with no incoming or
// no outgoing arc and clears its row and column, until nothing changes.
// If one of the required vertices is deactivated on the way, the result is
// an all-zero matrix with no active vertex.
func FilterSinksSources(a mat.Matrix, verts *mat.VecDense, required ...int) (*mat.Dense, *mat.VecDense, error) {
	m, v, err := Validate(a, verts)
	if err != nil {
		return nil, nil, err
	}
	m, v = filterSinksSources(m, v, required)
	return m, v, nil
}

func filterSinksSources(m *mat.Dense, v *mat.VecDense, required []int) (*mat.Dense, *mat.VecDense) {
	n, _ := m.Dims()
	if n == 0 {
		return m, v
	}
	all := ones(n)
	for {
		out := degree(m, Out, all)
		in := degree(m, In, all)
		for i := range n {
			if v.AtVec(i) != 0 && out.AtVec(i) != 0 && in.AtVec(i) != 0 {
				v.SetVec(i, 1)
			} else {
				v.SetVec(i, 0)
			}
		}

		next := ZeroRowsAndCols(m, v, false)
		if !RequiredActive(v, required...) {
			return mat.NewDense(n, n, nil), mat.NewVecDense(n, nil)
		}
		if mat.Equal(next, m) {
			return next, v
		}
		m = next
	}
}

// Prune restricts a to its active vertices. It returns the k x k adjacency
// matrix of the induced subgraph and the original indices of its vertices in
// ascending order. With no active vertex the matrix is empty.
func Prune(a mat.Matrix, verts *mat.VecDense) (*mat.Dense, []int, error) {
	m, v, err := Validate(a, verts)
	if err != nil {
		return nil, nil, err
	}
	pruned, active := prune(m, v)
	return pruned, active, nil
}

func prune(m *mat.Dense, v mat.Vector) (*mat.Dense, []int) {
	active := make([]int, 0, v.Len())
	for i := range v.Len() {
		if v.AtVec(i) != 0 {
			active = append(active, i)
		}
	}
	if len(active) == 0 {
		return &mat.Dense{}, active
	}

	pruned := mat.NewDense(len(active), len(active), nil)
	for r, i := range active {
		for c, j := range active {
			pruned.Set(r, c, m.At(i, j))
		}
	}
	return pruned, active
}
