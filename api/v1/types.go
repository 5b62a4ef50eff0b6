// Package v1 defines the JSON types of the allocation service HTTP API.
// These types are shared by the server handlers and API clients.
package v1

import (
	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/internal/report"
	"github.com/careops-incubation/icu-bed-allocator/internal/scenario"
	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
)

// AllocationRequest is the body of POST /api/v1/allocations.
type AllocationRequest struct {
	// Patients is the total patient count distributed across tiers.
	Patients float64 `json:"patients"`

	// Capacity is the total number of ICU beds to distribute.
	Capacity float64 `json:"capacity"`

	// Tiers is the severity split; omit it to use a preset.
	Tiers []scenario.Tier `json:"tiers,omitempty"`

	// Preset names a configured tier split used when Tiers is empty.
	Preset string `json:"preset,omitempty"`
}

// AllocationResponse is the result of an allocation call.
type AllocationResponse struct {
	// RequestID echoes the request correlation ID.
	RequestID string `json:"requestId"`

	// Strategy is the solver strategy that produced the result.
	Strategy string `json:"strategy"`

	// Allocation is the solver output.
	Allocation *core.Allocation `json:"allocation"`
}

// HospitalsResponse is the body of GET /api/v1/hospitals.
type HospitalsResponse struct {
	// Count is the number of records after filtering.
	Count int `json:"count"`

	// Hospitals holds the filtered records, sorted by descending shortage.
	Hospitals []dataset.Record `json:"hospitals"`
}

// SummaryResponse is the body of GET /api/v1/hospitals/summary.
type SummaryResponse struct {
	Totals        report.Totals        `json:"totals"`
	ByUrbanStatus []report.GroupTotals `json:"byUrbanStatus"`
}

// ErrorResponse is the body of any non-2xx API response.
type ErrorResponse struct {
	// Error is a human-readable message naming the failed constraint or
	// operation.
	Error string `json:"error"`
}
