package solver

import (
	"sort"

	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
)

// GreedySolver implements Solver with a water-fill by descending weight:
// the highest-weight group is filled up to its demand, then the next, until
// capacity runs out. Ties on weight are broken by original group index, so
// the result is deterministic.
//
// The greedy order is optimal here because every bed given to the unmet
// group with the largest weight yields the largest decrease of the
// objective, and the capacity sum is the only shared constraint.
type GreedySolver struct{}

// NewGreedySolver creates a new GreedySolver instance.
func NewGreedySolver() *GreedySolver {
	return &GreedySolver{}
}

// Allocate computes the optimal allocation for the request.
func (s *GreedySolver) Allocate(req *core.Request) (*core.Allocation, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	n := len(req.Groups)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable sort keeps equal-weight groups in original index order.
	sort.SliceStable(order, func(i, j int) bool {
		return req.Groups[order[i]].Weight > req.Groups[order[j]].Weight
	})

	allocated := make([]float64, n)
	remaining := req.Capacity
	for _, idx := range order {
		if remaining <= 0 {
			break
		}
		x := req.Groups[idx].Demand
		if x > remaining {
			x = remaining
		}
		allocated[idx] = x
		remaining -= x
	}

	return buildAllocation(req, allocated), nil
}
