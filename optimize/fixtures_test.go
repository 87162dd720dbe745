package optimize

import "math"

func fSquare(x float64) float64 { return x * x }
func fAbs(x float64) float64    { return math.Abs(x) }
func fCube(x float64) float64   { return x * x * x }

func sampleFuncs() []Func {
	return []Func{fSquare, fAbs, fCube}
}
