/*
Copyright 2025 The icu-bed-allocator Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dataset

import "context"

// Record is one hospital's ICU figures for the reporting window.
type Record struct {
	// HospitalID is the stable identifier from the source dataset.
	HospitalID string `json:"hospitalId"`

	// State is the two-letter state code.
	State string `json:"state"`

	// UrbanStatus is "Urban" or "Rural" when the source provides it,
	// empty otherwise.
	UrbanStatus string `json:"urbanStatus,omitempty"`

	// Demand is the staffed ICU adult patients confirmed 7-day average.
	Demand float64 `json:"demand"`

	// Capacity is the staffed adult ICU bed 7-day average.
	Capacity float64 `json:"capacity"`

	// Allocated is the optimized bed allocation for this hospital.
	Allocated float64 `json:"allocated"`

	// Shortage is max(Demand - Allocated, 0).
	Shortage float64 `json:"shortage"`
}

// Filter selects records by categorical attributes. Empty slices match
// everything. Filters are constructed per request.
type Filter struct {
	States        []string
	UrbanStatuses []string
}

// Match reports whether the record passes the filter.
func (f Filter) Match(r Record) bool {
	if len(f.States) > 0 && !contains(f.States, r.State) {
		return false
	}
	if len(f.UrbanStatuses) > 0 && !contains(f.UrbanStatuses, r.UrbanStatus) {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Source is the interface for pluggable hospital record providers.
// Implementations include CSVSource; a database-backed source would
// satisfy the same contract.
type Source interface {
	// Name returns the unique name of this source (e.g. "csv").
	Name() string

	// Records returns the records passing the filter. The returned slice
	// is owned by the caller.
	Records(ctx context.Context, filter Filter) ([]Record, error)
}
