// Package solver implements the bed allocation algorithms.
//
// The solver package answers a single question: given per-group bed demands,
// per-group priority weights, and a total bed capacity, how many beds does
// each group receive so that total weighted unmet demand is minimized?
//
// Formally it solves the linear program
//
//	minimize   sum_i w_i * (d_i - x_i)
//	subject to x_i >= 0, sum_i x_i <= capacity
//
// Key components:
//
//   - Solver: the allocation interface, one Allocate call per request
//   - GreedySolver: closed-form water-fill by descending weight
//   - SimplexSolver: general LP solve over the same constraints (gonum)
//   - New: factory selecting a strategy
//
// Both strategies are provably optimal for this problem shape (separable
// linear objective, one coupling constraint, box constraints) and return the
// same optimal objective value. Allocations may differ only among groups tied
// on weight; the greedy rule disambiguates ties deterministically by original
// group index.
//
// Example usage:
//
//	s, err := solver.New(solver.GreedyStrategy)
//	if err != nil {
//	    return err
//	}
//	alloc, err := s.Allocate(core.NewRequest(demands, weights, capacity))
//	if err != nil {
//	    var inputErr *solver.InvalidInputError
//	    if errors.As(err, &inputErr) {
//	        // malformed request, never retried
//	    }
//	    return err
//	}
//
// Solvers are stateless and hold no data between calls: concurrent Allocate
// invocations share no mutable state and need no coordination.
package solver
