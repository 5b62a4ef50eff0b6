package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/pkg/core"
)

var testRecords = []dataset.Record{
	{HospitalID: "1", State: "CA", UrbanStatus: "Urban", Demand: 25, Capacity: 40, Allocated: 20, Shortage: 5},
	{HospitalID: "2", State: "CA", UrbanStatus: "Rural", Demand: 8, Capacity: 10, Allocated: 8, Shortage: 0},
	{HospitalID: "3", State: "TX", UrbanStatus: "Urban", Demand: 50, Capacity: 60, Allocated: 35, Shortage: 15},
	{HospitalID: "4", State: "TX", Demand: 6, Capacity: 12, Allocated: 9, Shortage: 0},
}

func TestSummarize(t *testing.T) {
	totals := Summarize(testRecords)

	assert.Equal(t, 4, totals.Hospitals)
	assert.InDelta(t, 89, totals.Demand, 1e-9)
	assert.InDelta(t, 72, totals.Allocated, 1e-9)
	assert.InDelta(t, 20, totals.Shortage, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Totals{}, Summarize(nil))
}

func TestByUrbanStatus(t *testing.T) {
	groups := ByUrbanStatus(testRecords)
	require.Len(t, groups, 3)

	// Sorted by key: Rural, Urban, unknown.
	assert.Equal(t, "Rural", groups[0].Key)
	assert.Equal(t, 1, groups[0].Hospitals)
	assert.Equal(t, "Urban", groups[1].Key)
	assert.InDelta(t, 75, groups[1].Demand, 1e-9)
	assert.InDelta(t, 20, groups[1].Shortage, 1e-9)
	assert.Equal(t, "unknown", groups[2].Key)
}

func TestSortByShortage(t *testing.T) {
	sorted := SortByShortage(testRecords)

	assert.Equal(t, "3", sorted[0].HospitalID)
	assert.Equal(t, "1", sorted[1].HospitalID)
	// Input order preserved among ties.
	assert.Equal(t, "2", sorted[2].HospitalID)
	assert.Equal(t, "4", sorted[3].HospitalID)
	// The input slice is untouched.
	assert.Equal(t, "1", testRecords[0].HospitalID)
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testRecords))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "icu_allocated")
	assert.Contains(t, lines[0], "shortage")
	assert.Equal(t, "1,CA,Urban,40,25,20,5", lines[1])
}

func TestRenderAllocation(t *testing.T) {
	alloc := &core.Allocation{
		Groups: []core.GroupResult{
			{Name: "critical", Demand: 30, Weight: 3, Allocated: 30, Unmet: 0},
			{Demand: 40, Weight: 2, Allocated: 20, Unmet: 20},
		},
		Objective:      40,
		TotalAllocated: 50,
		TotalUnmet:     20,
		Capacity:       50,
	}

	var buf bytes.Buffer
	RenderAllocation(&buf, alloc)

	out := buf.String()
	assert.Contains(t, out, "critical")
	assert.Contains(t, out, "group-1")
	assert.Contains(t, out, "Objective (weighted unmet demand): 40.00")
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, testRecords)

	out := buf.String()
	assert.Contains(t, out, "Hospitals: 4")
	assert.Contains(t, out, "Rural")
}
