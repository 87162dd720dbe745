package optimize

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNoFunctions = errors.New("objective has no component functions")
	ErrDimension   = errors.New("starting point does not match number of functions")
)

// Iteration is one entry of a descent's convergence history.
type Iteration struct {
	Iteration int
	X         []float64
	C         float64
	Objective float64
}

// Solution is the outcome of one descent.
type Solution struct {
	// X is the final point.
	X []float64
	// Value is Objective(X) in minimization form: negated when maximizing.
	Value float64
	// Lambda is the final Lagrange multiplier.
	Lambda float64
	// History holds one entry per iteration performed.
	History []Iteration

	argmax bool
}

// ObjectiveValue returns the objective at X in the caller's sense, i.e.
// un-negated when maximizing.
func (s Solution) ObjectiveValue() float64 {
	if s.argmax {
		return -s.Value
	}
	return s.Value
}

// Converged reports whether the last iteration met the tolerance tol.
func (s Solution) Converged(tol float64) bool {
	if len(s.History) == 0 {
		return false
	}
	return math.Abs(s.History[len(s.History)-1].C) < tol
}

// Descend runs subgradient descent on the augmented Lagrangian from x0.
// A nil x0 starts from the centre of the simplex, 1/n in every coordinate.
// x0 is not modified.
//
// Each iteration steps x against the subgradient plus λ + ρc, clips x to
// [0, 1], updates λ += ρc and stops once |c| falls below the tolerance.
// Otherwise ρ grows by β when |c| improved by less than tol/10, and the step
// size decays by γ.
func Descend(funcs []Func, x0 []float64, opts ...Option) (Solution, error) {
	return descend(funcs, x0, newConfig(opts...))
}

func descend(funcs []Func, x0 []float64, cfg *config) (Solution, error) {
	n := len(funcs)
	if n == 0 {
		return Solution{}, ErrNoFunctions
	}

	x := make([]float64, n)
	switch {
	case x0 == nil:
		for i := range x {
			x[i] = 1 / float64(n)
		}
	case len(x0) != n:
		return Solution{}, fmt.Errorf("%w: len(x0)=%d, %d functions", ErrDimension, len(x0), n)
	default:
		copy(x, x0)
	}

	var lambda float64
	rho, eta := cfg.rho0, cfg.eta0
	history := make([]Iteration, 0, min(cfg.maxIter, 64))
	c := ConstraintViolation(x)

	for iter := range cfg.maxIter {
		g := Subgradient(x, funcs, cfg.epsilon, cfg.argmax)
		for i := range x {
			x[i] = clip(x[i] - eta*(g[i]+lambda+rho*c))
		}

		c = ConstraintViolation(x)
		lambda += rho * c

		history = append(history, Iteration{
			Iteration: iter,
			X:         append([]float64(nil), x...),
			C:         c,
			Objective: Objective(x, funcs, cfg.argmax),
		})
		if math.Abs(c) < cfg.tol {
			break
		}

		if iter > 0 && math.Abs(history[len(history)-2].C)-math.Abs(c) < cfg.tol/10 {
			rho *= cfg.beta
		}
		eta *= cfg.gamma
	}

	sol := Solution{
		X:       x,
		Value:   Objective(x, funcs, cfg.argmax),
		Lambda:  lambda,
		History: history,
		argmax:  cfg.argmax,
	}
	cfg.logger.Debug().
		Int("iterations", len(history)).
		Float64("violation", c).
		Float64("value", sol.Value).
		Msg("descent finished")
	return sol, nil
}

func clip(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
