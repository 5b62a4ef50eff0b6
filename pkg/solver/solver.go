package solver

import (
	"fmt"
	"math"

	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
)

// Solver computes a bed allocation for a single request.
type Solver interface {
	// Allocate returns the optimal allocation for the request, or an
	// *InvalidInputError if the request is malformed. The request is not
	// mutated.
	Allocate(req *core.Request) (*core.Allocation, error)
}

// Strategy is an enumeration of the available allocation strategies.
type Strategy int

// enumeration of Strategy
const (
	// GreedyStrategy is the closed-form water-fill by descending weight.
	GreedyStrategy Strategy = iota

	// SimplexStrategy solves the equivalent linear program with a general
	// simplex method. Useful for cross-checking the greedy solution.
	SimplexStrategy
)

// ParseStrategy maps a configuration string to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "", "greedy":
		return GreedyStrategy, nil
	case "simplex":
		return SimplexStrategy, nil
	default:
		return 0, fmt.Errorf("unknown solver strategy %q", name)
	}
}

// New is a factory that creates a Solver for the given strategy.
func New(strategy Strategy) (Solver, error) {
	switch strategy {
	case GreedyStrategy:
		return NewGreedySolver(), nil
	case SimplexStrategy:
		return NewSimplexSolver(), nil
	default:
		return nil, fmt.Errorf("unsupported solver strategy: %v", strategy)
	}
}

// Allocate is a convenience wrapper running the greedy strategy over raw
// demand and weight slices.
func Allocate(demands, weights []float64, capacity float64) (*core.Allocation, error) {
	if len(demands) != len(weights) {
		return nil, invalidInputf("weights",
			"length %d does not match demands length %d", len(weights), len(demands))
	}
	return NewGreedySolver().Allocate(core.NewRequest(demands, weights, capacity))
}

// validate checks the request against the solver input constraints.
func validate(req *core.Request) error {
	if req == nil {
		return invalidInputf("request", "must not be nil")
	}
	if len(req.Groups) == 0 {
		return invalidInputf("groups", "must not be empty")
	}
	for i, g := range req.Groups {
		if g.Demand < 0 || math.IsNaN(g.Demand) || math.IsInf(g.Demand, 0) {
			return invalidInputf("demands", "group %d demand %v must be a non-negative number", i, g.Demand)
		}
		if g.Weight < 0 || math.IsNaN(g.Weight) || math.IsInf(g.Weight, 0) {
			return invalidInputf("weights", "group %d weight %v must be a non-negative number", i, g.Weight)
		}
	}
	if req.Capacity < 0 || math.IsNaN(req.Capacity) || math.IsInf(req.Capacity, 0) {
		return invalidInputf("capacity", "%v must be a non-negative number", req.Capacity)
	}
	return nil
}

// buildAllocation assembles the result from per-group allocated amounts, in
// request order. Tiny negative amounts from floating-point noise are clamped
// to zero.
func buildAllocation(req *core.Request, allocated []float64) *core.Allocation {
	out := &core.Allocation{
		Groups:   make([]core.GroupResult, len(req.Groups)),
		Capacity: req.Capacity,
	}
	for i, g := range req.Groups {
		x := allocated[i]
		if x < 0 {
			x = 0
		}
		unmet := g.Demand - x
		if unmet < 0 {
			unmet = 0
		}
		out.Groups[i] = core.GroupResult{
			Name:      g.Name,
			Demand:    g.Demand,
			Weight:    g.Weight,
			Allocated: x,
			Unmet:     unmet,
		}
		out.TotalAllocated += x
		out.TotalUnmet += unmet
		out.Objective += g.Weight * unmet
	}
	return out
}
