// Package optimize finds the point on the probability simplex that minimizes
// (or maximizes) a separable objective
//
//	f(x) = f_0(x_0) + f_1(x_1) + ... + f_{n-1}(x_{n-1})
//
// subject to sum(x) = 1 and 0 <= x_i <= 1.
//
// Descend runs projected subgradient descent on the augmented Lagrangian
//
//	L(x, λ, ρ) = f(x) + λ·c(x) + ρ/2·c(x)²,  c(x) = sum(x) - 1
//
// with a decaying step size and a penalty that grows while the constraint
// violation stalls. Subgradients are estimated by forward differences, so the
// component functions need not be differentiable.
//
// The objective is in general not convex, so MultiStart runs many descents
// from random points on the simplex concurrently and keeps the best one.
//
//	funcs := []optimize.Func{
//	    func(x float64) float64 { return 2 * math.Cbrt(x) },
//	    func(x float64) float64 { return 5 * x * x },
//	}
//	best, all, err := optimize.MultiStart(ctx, funcs,
//	    optimize.WithStarts(20),
//	    optimize.WithArgmax(),
//	)
package optimize
