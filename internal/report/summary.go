// Package report turns allocation results and hospital records into
// summaries, tables, and CSV exports. It is a pure consumer of solver and
// dataset output.
package report

import (
	"sort"

	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
)

// Totals aggregates demand, allocation, and shortage over a record set.
type Totals struct {
	Hospitals int     `json:"hospitals"`
	Demand    float64 `json:"demand"`
	Allocated float64 `json:"allocated"`
	Shortage  float64 `json:"shortage"`
}

// GroupTotals is a Totals bucket keyed by a categorical attribute value.
type GroupTotals struct {
	Key string `json:"key"`
	Totals
}

// Summarize computes overall totals for the records.
func Summarize(records []dataset.Record) Totals {
	var t Totals
	for _, r := range records {
		t.Hospitals++
		t.Demand += r.Demand
		t.Allocated += r.Allocated
		t.Shortage += r.Shortage
	}
	return t
}

// ByUrbanStatus buckets totals by the urban_status attribute, sorted by key
// for deterministic output. Records without the attribute land in the
// "unknown" bucket.
func ByUrbanStatus(records []dataset.Record) []GroupTotals {
	buckets := make(map[string]Totals)
	for _, r := range records {
		key := r.UrbanStatus
		if key == "" {
			key = "unknown"
		}
		t := buckets[key]
		t.Hospitals++
		t.Demand += r.Demand
		t.Allocated += r.Allocated
		t.Shortage += r.Shortage
		buckets[key] = t
	}

	out := make([]GroupTotals, 0, len(buckets))
	for key, t := range buckets {
		out = append(out, GroupTotals{Key: key, Totals: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// SortByShortage orders records by descending shortage, the default view of
// the raw-data table. Ties keep their input order.
func SortByShortage(records []dataset.Record) []dataset.Record {
	out := make([]dataset.Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Shortage > out[j].Shortage })
	return out
}
