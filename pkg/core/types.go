package core

// Group is a patient severity cohort competing for beds in one allocation
// round. Weight is a relative priority: a higher weight means unmet demand
// in this group is penalized more by the solver objective.
type Group struct {
	// Name is an optional human-readable tier label (e.g. "critical").
	Name string `json:"name,omitempty"`

	// Demand is the number of beds the group needs. Fractional values are
	// allowed; demands are typically averages over a reporting window.
	Demand float64 `json:"demand"`

	// Weight is the non-negative priority weight of the group.
	Weight float64 `json:"weight"`
}

// Request is a single allocation problem: a set of groups sharing one bed
// capacity. Requests are constructed fresh per invocation and never mutated
// by the solver.
type Request struct {
	Groups   []Group `json:"groups"`
	Capacity float64 `json:"capacity"`
}

// NewRequest builds a Request from parallel demand and weight slices.
// The slices are copied; callers may reuse them afterwards. Length agreement
// is validated by the solver, not here.
func NewRequest(demands, weights []float64, capacity float64) *Request {
	n := len(demands)
	if len(weights) > n {
		n = len(weights)
	}
	groups := make([]Group, n)
	for i := range groups {
		if i < len(demands) {
			groups[i].Demand = demands[i]
		}
		if i < len(weights) {
			groups[i].Weight = weights[i]
		}
	}
	return &Request{Groups: groups, Capacity: capacity}
}

// TotalDemand returns the sum of group demands.
func (r *Request) TotalDemand() float64 {
	var sum float64
	for _, g := range r.Groups {
		sum += g.Demand
	}
	return sum
}

// GroupResult is the outcome of an allocation for a single group.
type GroupResult struct {
	Name      string  `json:"name,omitempty"`
	Demand    float64 `json:"demand"`
	Weight    float64 `json:"weight"`
	Allocated float64 `json:"allocated"`

	// Unmet is max(Demand - Allocated, 0).
	Unmet float64 `json:"unmet"`
}

// Allocation is the result of one solver invocation.
type Allocation struct {
	// Groups holds per-group results in the same order as the request.
	Groups []GroupResult `json:"groups"`

	// Objective is the total weighted unmet demand, sum of w_i * unmet_i.
	Objective float64 `json:"objective"`

	// TotalAllocated is the sum of allocated beds, never exceeding Capacity.
	TotalAllocated float64 `json:"totalAllocated"`

	// TotalUnmet is the sum of unmet demand across groups.
	TotalUnmet float64 `json:"totalUnmet"`

	// Capacity echoes the request capacity for consumers of the result.
	Capacity float64 `json:"capacity"`
}

// Allocations returns the per-group allocated amounts as a slice, in request
// order.
func (a *Allocation) Allocations() []float64 {
	out := make([]float64, len(a.Groups))
	for i, g := range a.Groups {
		out[i] = g.Allocated
	}
	return out
}

// UnmetDemands returns the per-group unmet demand as a slice, in request
// order.
func (a *Allocation) UnmetDemands() []float64 {
	out := make([]float64, len(a.Groups))
	for i, g := range a.Groups {
		out[i] = g.Unmet
	}
	return out
}
