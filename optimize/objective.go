package optimize

// Func is one component f_i of a separable objective.
type Func func(x float64) float64

// Objective returns sum f_i(x_i). With argmax the sum is negated, so that
// minimizing the result maximizes the objective. Only the first
// min(len(x), len(funcs)) terms are summed; Descend rejects mismatched
// lengths with ErrDimension before calling it.
func Objective(x []float64, funcs []Func, argmax bool) float64 {
	var sum float64
	for i, f := range funcs[:min(len(x), len(funcs))] {
		sum += f(x[i])
	}
	if argmax {
		return -sum
	}
	return sum
}

// ConstraintViolation returns c(x) = sum(x) - 1.
func ConstraintViolation(x []float64) float64 {
	var sum float64
	for _, xi := range x {
		sum += xi
	}
	return sum - 1
}

// AugmentedLagrangian returns Objective(x) + λc + ρc²/2.
func AugmentedLagrangian(x []float64, funcs []Func, lambda, rho float64, argmax bool) float64 {
	c := ConstraintViolation(x)
	return Objective(x, funcs, argmax) + lambda*c + 0.5*rho*c*c
}

// NumericalSubgradient estimates the derivative of f at x with a forward
// difference of width epsilon, negated with argmax.
func NumericalSubgradient(f Func, x, epsilon float64, argmax bool) float64 {
	g := (f(x+epsilon) - f(x)) / epsilon
	if argmax {
		return -g
	}
	return g
}

// Subgradient returns the per-coordinate numerical subgradient of the
// objective at x. Like Objective it covers only the first
// min(len(x), len(funcs)) coordinates.
func Subgradient(x []float64, funcs []Func, epsilon float64, argmax bool) []float64 {
	n := min(len(x), len(funcs))
	g := make([]float64, n)
	for i := range n {
		g[i] = NumericalSubgradient(funcs[i], x[i], epsilon, argmax)
	}
	return g
}
