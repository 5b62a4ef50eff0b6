// Package scenario translates user-facing what-if inputs into solver
// requests.
//
// A scenario is a total patient count split across named severity tiers by
// percentage, with a priority weight per tier. Validation happens here,
// before the solver is ever invoked, and failures name the constraint that
// was violated.
package scenario

import (
	"fmt"
	"math"

	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
	"github.com/careops-incubation/icu-bed-allocator/pkg/solver"
)

// percentTolerance is the slack allowed when checking that tier percentages
// sum to 100, absorbing floating-point input noise.
const percentTolerance = 1e-6

// Tier is one severity cohort of a scenario.
type Tier struct {
	// Name labels the tier (e.g. "moderate", "severe", "critical").
	Name string `yaml:"name" json:"name"`

	// Percent is the tier's share of the total patient count, in [0, 100].
	Percent float64 `yaml:"percent" json:"percent"`

	// Weight is the tier's non-negative priority weight.
	Weight float64 `yaml:"weight" json:"weight"`
}

// Scenario is a user-specified allocation problem: a patient count, a bed
// capacity, and a percentage split across severity tiers.
type Scenario struct {
	// Patients is the total patient count distributed across tiers.
	Patients float64 `yaml:"patients" json:"patients"`

	// Capacity is the total number of ICU beds available.
	Capacity float64 `yaml:"capacity" json:"capacity"`

	// Tiers is the severity split. Percentages must sum to 100.
	Tiers []Tier `yaml:"tiers" json:"tiers"`
}

// Validate checks the scenario constraints. Violations are reported as
// *solver.InvalidInputError naming the failed constraint.
func (s *Scenario) Validate() error {
	if s.Patients < 0 || math.IsNaN(s.Patients) || math.IsInf(s.Patients, 0) {
		return invalidf("patients", "%v must be a non-negative number", s.Patients)
	}
	if s.Capacity < 0 || math.IsNaN(s.Capacity) || math.IsInf(s.Capacity, 0) {
		return invalidf("capacity", "%v must be a non-negative number", s.Capacity)
	}
	if len(s.Tiers) == 0 {
		return invalidf("tiers", "must not be empty")
	}

	var percentSum float64
	for i, tier := range s.Tiers {
		if tier.Percent < 0 || tier.Percent > 100 {
			return invalidf("tiers", "tier %d (%s) percent %.2f must be between 0 and 100", i, tier.Name, tier.Percent)
		}
		if tier.Weight < 0 || math.IsNaN(tier.Weight) || math.IsInf(tier.Weight, 0) {
			return invalidf("tiers", "tier %d (%s) weight %v must be a non-negative number", i, tier.Name, tier.Weight)
		}
		percentSum += tier.Percent
	}
	if math.Abs(percentSum-100) > percentTolerance {
		return invalidf("tiers", "percentages sum to %.4f, must sum to 100", percentSum)
	}
	return nil
}

// BuildRequest validates the scenario and converts it to a solver request:
// each tier's demand is patients * percent / 100.
func (s *Scenario) BuildRequest() (*core.Request, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	groups := make([]core.Group, len(s.Tiers))
	for i, tier := range s.Tiers {
		groups[i] = core.Group{
			Name:   tier.Name,
			Demand: s.Patients * tier.Percent / 100,
			Weight: tier.Weight,
		}
	}
	return &core.Request{Groups: groups, Capacity: s.Capacity}, nil
}

func invalidf(field, format string, args ...any) error {
	return &solver.InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
