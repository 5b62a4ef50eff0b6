package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apiv1 "github.com/careops-incubation/icu-bed-allocator/api/v1"
	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/internal/metrics"
	"github.com/careops-incubation/icu-bed-allocator/internal/report"
	"github.com/careops-incubation/icu-bed-allocator/internal/scenario"
	"github.com/careops-incubation/icu-bed-allocator/pkg/solver"
)

// Allocate handles POST /api/v1/allocations: scenario in, allocation out.
func (s *Server) Allocate(c *gin.Context) {
	var req apiv1.AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.AllocationsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		c.JSON(http.StatusBadRequest, apiv1.ErrorResponse{Error: "malformed request body: " + err.Error()})
		return
	}

	tiers := req.Tiers
	if len(tiers) == 0 {
		preset := req.Preset
		if preset == "" {
			preset = scenario.DefaultPresetName
		}
		var ok bool
		tiers, ok = s.presets[preset]
		if !ok {
			metrics.AllocationsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
			c.JSON(http.StatusUnprocessableEntity, apiv1.ErrorResponse{Error: "unknown tier preset: " + preset})
			return
		}
	}

	sc := scenario.Scenario{
		Patients: req.Patients,
		Capacity: req.Capacity,
		Tiers:    tiers,
	}
	solverReq, err := sc.BuildRequest()
	if err != nil {
		metrics.AllocationsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
		c.JSON(http.StatusUnprocessableEntity, apiv1.ErrorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	alloc, err := s.solver.Allocate(solverReq)
	metrics.AllocationDurationSeconds.Observe(time.Since(start).Seconds())
	if err != nil {
		var inputErr *solver.InvalidInputError
		if errors.As(err, &inputErr) {
			metrics.AllocationsTotal.WithLabelValues(metrics.StatusInvalid).Inc()
			c.JSON(http.StatusUnprocessableEntity, apiv1.ErrorResponse{Error: err.Error()})
			return
		}
		metrics.AllocationsTotal.WithLabelValues(metrics.StatusError).Inc()
		s.logger.Errorw("Allocation failed", "error", err, "requestId", c.GetString("requestID"))
		c.JSON(http.StatusInternalServerError, apiv1.ErrorResponse{Error: "allocation failed"})
		return
	}

	metrics.AllocationsTotal.WithLabelValues(metrics.StatusOK).Inc()
	c.JSON(http.StatusOK, apiv1.AllocationResponse{
		RequestID:  c.GetString("requestID"),
		Strategy:   s.strategyName,
		Allocation: alloc,
	})
}

// Hospitals handles GET /api/v1/hospitals with optional repeatable state and
// urban_status query filters.
func (s *Server) Hospitals(c *gin.Context) {
	records, ok := s.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, apiv1.HospitalsResponse{
		Count:     len(records),
		Hospitals: report.SortByShortage(records),
	})
}

// Summary handles GET /api/v1/hospitals/summary.
func (s *Server) Summary(c *gin.Context) {
	records, ok := s.loadRecords(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, apiv1.SummaryResponse{
		Totals:        report.Summarize(records),
		ByUrbanStatus: report.ByUrbanStatus(records),
	})
}

// Export handles GET /api/v1/hospitals/export, streaming filtered records as
// a CSV download.
func (s *Server) Export(c *gin.Context) {
	records, ok := s.loadRecords(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="hospital_optimized_allocation_filtered.csv"`)
	c.Status(http.StatusOK)
	if err := report.WriteCSV(c.Writer, report.SortByShortage(records)); err != nil {
		s.logger.Errorw("CSV export failed", "error", err, "requestId", c.GetString("requestID"))
	}
}

// Healthz handles GET /healthz.
func (s *Server) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) loadRecords(c *gin.Context) ([]dataset.Record, bool) {
	filter := dataset.Filter{
		States:        c.QueryArray("state"),
		UrbanStatuses: c.QueryArray("urban_status"),
	}
	records, err := s.source.Records(c.Request.Context(), filter)
	if err != nil {
		s.logger.Errorw("Loading hospital records failed",
			"source", s.source.Name(),
			"error", err,
			"requestId", c.GetString("requestID"))
		c.JSON(http.StatusInternalServerError, apiv1.ErrorResponse{Error: "loading hospital records failed"})
		return nil, false
	}
	return records, true
}
