package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
)

// SimplexSolver implements Solver by handing the equivalent linear program
// to gonum's standard-form simplex method. It exists to cross-check the
// greedy water-fill: both must return the same optimal objective value,
// though allocations may differ among groups tied on weight.
type SimplexSolver struct{}

// NewSimplexSolver creates a new SimplexSolver instance.
func NewSimplexSolver() *SimplexSolver {
	return &SimplexSolver{}
}

// Allocate solves the request as a standard-form LP.
//
// Minimizing sum w_i*(d_i - x_i) is equivalent to minimizing -sum w_i*x_i.
// The feasible region {x >= 0, sum x <= B, x_i <= d_i} is brought to
// standard form Ax = b with one slack variable s for the capacity row and
// one surplus variable t_i per demand bound:
//
//	x_1 + ... + x_n + s = B
//	x_i + t_i           = d_i
//
// The demand bounds do not change the optimum (allocating past demand never
// improves the objective) but are required to keep the LP bounded.
func (s *SimplexSolver) Allocate(req *core.Request) (*core.Allocation, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	n := len(req.Groups)
	nVars := 2*n + 1 // x_1..x_n, s, t_1..t_n

	c := make([]float64, nVars)
	for i, g := range req.Groups {
		c[i] = -g.Weight
	}

	a := mat.NewDense(n+1, nVars, nil)
	b := make([]float64, n+1)
	for i := 0; i < n; i++ {
		a.Set(0, i, 1)
	}
	a.Set(0, n, 1)
	b[0] = req.Capacity
	for i, g := range req.Groups {
		a.Set(i+1, i, 1)
		a.Set(i+1, n+1+i, 1)
		b[i+1] = g.Demand
	}

	_, x, err := lp.Simplex(c, a, b, 0, nil)
	if err != nil {
		if errors.Is(err, lp.ErrInfeasible) || errors.Is(err, lp.ErrUnbounded) {
			return nil, invalidInputf("request", "constraints are contradictory: %v", err)
		}
		return nil, fmt.Errorf("simplex solve failed: %w", err)
	}

	return buildAllocation(req, x[:n]), nil
}
