// Package core provides the fundamental data structures for the ICU bed
// allocation engine.
//
// This package contains the domain models shared by the solver and the
// surrounding service layers:
//
//   - Group: a patient severity cohort with a bed demand and a priority weight
//   - Request: a single allocation problem (groups plus a shared bed capacity)
//   - GroupResult: the per-group outcome of an allocation
//   - Allocation: the full result of one solver invocation
//
// Example usage:
//
//	req := core.NewRequest(
//	    []float64{30, 40, 30},    // demands
//	    []float64{1.0, 2.0, 3.0}, // weights
//	    50,                       // capacity
//	)
//
//	// Hand the request to a solver and inspect the result.
//	for _, g := range alloc.Groups {
//	    fmt.Println(g.Name, g.Allocated, g.Unmet)
//	}
//
// The core package is designed to be:
//   - Immutable where possible (value types)
//   - Free of transport and storage dependencies (pure domain logic)
//   - Shared between the solver, the HTTP layer, and the CLI
package core
