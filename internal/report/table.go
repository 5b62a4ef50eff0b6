package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
)

// RenderRecords writes a text table of hospital records sorted by descending
// shortage.
func RenderRecords(w io.Writer, records []dataset.Record) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Hospital", "State", "Urban Status", "ICU Beds", "Demand", "Allocated", "Shortage"})

	for _, r := range SortByShortage(records) {
		table.Append([]string{
			r.HospitalID,
			r.State,
			r.UrbanStatus,
			fmt.Sprintf("%.1f", r.Capacity),
			fmt.Sprintf("%.1f", r.Demand),
			fmt.Sprintf("%.1f", r.Allocated),
			fmt.Sprintf("%.1f", r.Shortage),
		})
	}
	table.Render()
}

// RenderSummary writes overall totals followed by the urban status
// breakdown.
func RenderSummary(w io.Writer, records []dataset.Record) {
	totals := Summarize(records)
	fmt.Fprintf(w, "Hospitals: %d  Demand: %.1f  Allocated: %.1f  Shortage: %.1f\n",
		totals.Hospitals, totals.Demand, totals.Allocated, totals.Shortage)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Urban Status", "Hospitals", "Demand", "Allocated", "Shortage"})
	for _, g := range ByUrbanStatus(records) {
		table.Append([]string{
			g.Key,
			fmt.Sprintf("%d", g.Hospitals),
			fmt.Sprintf("%.1f", g.Demand),
			fmt.Sprintf("%.1f", g.Allocated),
			fmt.Sprintf("%.1f", g.Shortage),
		})
	}
	table.Render()
}

// RenderAllocation writes a text table of a solver result.
func RenderAllocation(w io.Writer, alloc *core.Allocation) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Tier", "Weight", "Demand", "Allocated", "Unmet"})

	for i, g := range alloc.Groups {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("group-%d", i)
		}
		table.Append([]string{
			name,
			fmt.Sprintf("%.2f", g.Weight),
			fmt.Sprintf("%.2f", g.Demand),
			fmt.Sprintf("%.2f", g.Allocated),
			fmt.Sprintf("%.2f", g.Unmet),
		})
	}
	table.SetFooter([]string{
		"total",
		"",
		fmt.Sprintf("%.2f", alloc.TotalAllocated+alloc.TotalUnmet),
		fmt.Sprintf("%.2f", alloc.TotalAllocated),
		fmt.Sprintf("%.2f", alloc.TotalUnmet),
	})
	table.Render()

	fmt.Fprintf(w, "Objective (weighted unmet demand): %.2f  Capacity: %.2f\n",
		alloc.Objective, alloc.Capacity)
}
