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

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/careops-incubation/icu-bed-allocator/internal/logging"
	"github.com/careops-incubation/icu-bed-allocator/internal/metrics"
)

// Column names of the optimized-allocation CSV export.
const (
	colHospitalID  = "hospital_pk"
	colState       = "state"
	colUrbanStatus = "urban_status"
	colDemand      = "staffed_icu_adult_patients_confirmed_covid_7_day_avg"
	colCapacity    = "total_staffed_adult_icu_beds_7_day_avg"
	colAllocated   = "icu_allocated"
)

// CSVSource reads hospital records from a CSV file on every Records call,
// so an updated export is picked up without a restart. The urban_status and
// capacity columns are optional; records missing them get zero values.
type CSVSource struct {
	path   string
	logger *zap.SugaredLogger
}

// NewCSVSource creates a CSVSource for the given file path.
func NewCSVSource(path string) (*CSVSource, error) {
	if path == "" {
		return nil, fmt.Errorf("csv source path cannot be empty")
	}
	return &CSVSource{
		path:   path,
		logger: logging.Named("dataset"),
	}, nil
}

// Name returns the unique name of this source.
func (s *CSVSource) Name() string { return "csv" }

// Records loads, parses, and filters the CSV file. Rows with unparsable
// required numerics are skipped with a log line; shortage is derived and
// clipped at zero.
func (s *CSVSource) Records(ctx context.Context, filter Filter) ([]Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", s.path, err)
	}
	defer f.Close()

	records, err := s.parse(ctx, f, filter)
	if err != nil {
		return nil, err
	}
	metrics.DatasetRowsLoadedTotal.Add(float64(len(records)))
	return records, nil
}

func (s *CSVSource) parse(ctx context.Context, r io.Reader, filter Filter) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colHospitalID, colState, colDemand, colAllocated} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("dataset is missing required column %q", required)
		}
	}

	var out []Record
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}

		rec := Record{
			HospitalID: row[cols[colHospitalID]],
			State:      row[cols[colState]],
		}
		if idx, ok := cols[colUrbanStatus]; ok {
			rec.UrbanStatus = row[idx]
		}

		rec.Demand, err = parseFloat(row[cols[colDemand]])
		if err != nil {
			s.logger.Debugw("Skipping row with unparsable demand",
				"line", line,
				"hospital", rec.HospitalID,
				"error", err)
			continue
		}
		rec.Allocated, err = parseFloat(row[cols[colAllocated]])
		if err != nil {
			s.logger.Debugw("Skipping row with unparsable allocation",
				"line", line,
				"hospital", rec.HospitalID,
				"error", err)
			continue
		}
		if idx, ok := cols[colCapacity]; ok {
			// Capacity is display-only, so a bad value degrades to zero
			// instead of dropping the row.
			rec.Capacity, _ = parseFloat(row[idx])
		}

		rec.Shortage = rec.Demand - rec.Allocated
		if rec.Shortage < 0 {
			rec.Shortage = 0
		}

		if filter.Match(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
