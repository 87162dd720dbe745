package graph

import (
	"gonum.org/v1/gonum/mat"
)

func dense(rows [][]float64) *mat.Dense {
	n := len(rows)
	m := mat.NewDense(n, len(rows[0]), nil)
	for i, r := range rows {
		m.SetRow(i, r)
	}
	return m
}

func vec(v ...float64) *mat.VecDense {
	return mat.NewVecDense(len(v), v)
}

func grid(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	out := make([][]float64, r)
	for i := range r {
		out[i] = make([]float64, c)
		for j := range c {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func values(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}

// cycle3 is 0 -> 1 -> 2 -> 0.
func cycle3() *mat.Dense {
	return dense([][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{1, 0, 0},
	})
}

// path3 is 0 <-> 1 <-> 2.
func path3() *mat.Dense {
	return dense([][]float64{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	})
}
