package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
)

// csvHeader matches the column layout of the source dataset plus the derived
// shortage column, so an exported file round-trips through the CSV source.
var csvHeader = []string{
	"hospital_pk",
	"state",
	"urban_status",
	"total_staffed_adult_icu_beds_7_day_avg",
	"staffed_icu_adult_patients_confirmed_covid_7_day_avg",
	"icu_allocated",
	"shortage",
}

// WriteCSV writes the records as CSV, including the derived shortage column.
func WriteCSV(w io.Writer, records []dataset.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.HospitalID,
			r.State,
			r.UrbanStatus,
			formatFloat(r.Capacity),
			formatFloat(r.Demand),
			formatFloat(r.Allocated),
			formatFloat(r.Shortage),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row for hospital %s: %w", r.HospitalID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
