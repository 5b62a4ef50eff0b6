package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apiv1 "github.com/careops-incubation/icu-bed-allocator/api/v1"
	"github.com/careops-incubation/icu-bed-allocator/internal/config"
	"github.com/careops-incubation/icu-bed-allocator/internal/dataset"
	"github.com/careops-incubation/icu-bed-allocator/internal/scenario"
)

const testCSV = `hospital_pk,state,urban_status,total_staffed_adult_icu_beds_7_day_avg,staffed_icu_adult_patients_confirmed_covid_7_day_avg,icu_allocated
100001,CA,Urban,40,25.5,20
100002,CA,Rural,10,8,8
100003,TX,Urban,60,50,35
`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "hospitals.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Dataset.Path = path

	source, err := dataset.NewCSVSource(path)
	require.NoError(t, err)

	presets := scenario.Presets{
		scenario.DefaultPresetName: scenario.DefaultTiers(),
		"two-tier": {
			{Name: "severe", Percent: 50, Weight: 2},
			{Name: "critical", Percent: 50, Weight: 5},
		},
	}

	srv, err := New(cfg, source, presets)
	require.NoError(t, err)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&reader).Encode(body))
	}
	req := httptest.NewRequest(method, path, &reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestAllocate_ScenarioExample(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/allocations", apiv1.AllocationRequest{
		Patients: 100,
		Capacity: 50,
		Tiers:    scenario.DefaultTiers(),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiv1.AllocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Allocation)

	assert.Equal(t, "greedy", resp.Strategy)
	assert.NotEmpty(t, resp.RequestID)
	assert.InDeltaSlice(t, []float64{0, 20, 30}, resp.Allocation.Allocations(), 1e-9)
	assert.InDelta(t, 70, resp.Allocation.Objective, 1e-9)
}

func TestAllocate_DefaultPreset(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/allocations", apiv1.AllocationRequest{
		Patients: 100,
		Capacity: 200,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiv1.AllocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Allocation.Groups, 3)
	assert.Zero(t, resp.Allocation.Objective)
}

func TestAllocate_NamedPreset(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/allocations", apiv1.AllocationRequest{
		Patients: 80,
		Capacity: 40,
		Preset:   "two-tier",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiv1.AllocationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Allocation.Groups, 2)
	assert.Equal(t, "critical", resp.Allocation.Groups[1].Name)
	assert.InDelta(t, 40, resp.Allocation.Groups[1].Allocated, 1e-9)
}

func TestAllocate_UnknownPreset(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/allocations", apiv1.AllocationRequest{
		Patients: 100,
		Capacity: 50,
		Preset:   "nope",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "unknown tier preset")
}

func TestAllocate_PercentagesNotSumming(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/api/v1/allocations", apiv1.AllocationRequest{
		Patients: 100,
		Capacity: 50,
		Tiers: []scenario.Tier{
			{Name: "severe", Percent: 60, Weight: 2},
			{Name: "critical", Percent: 30, Weight: 3},
		},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp apiv1.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "must sum to 100")
}

func TestAllocate_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/allocations", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHospitals_Filtered(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/hospitals?state=CA&urban_status=Urban", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiv1.HospitalsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "100001", resp.Hospitals[0].HospitalID)
}

func TestHospitals_SortedByShortage(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/hospitals", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiv1.HospitalsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "100003", resp.Hospitals[0].HospitalID)
}

func TestSummary(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/hospitals/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp apiv1.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Totals.Hospitals)
	assert.InDelta(t, 83.5, resp.Totals.Demand, 1e-9)
	require.Len(t, resp.ByUrbanStatus, 2)
	assert.Equal(t, "Rural", resp.ByUrbanStatus[0].Key)
}

func TestExport(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/api/v1/hospitals/export?state=TX", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "100003,TX,Urban")
	assert.NotContains(t, w.Body.String(), "100001")
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Drive one allocation so the counters exist.
	doJSON(t, srv, http.MethodPost, "/api/v1/allocations", apiv1.AllocationRequest{Patients: 10, Capacity: 5})

	w := doJSON(t, srv, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "icu_allocations_total")
}

func TestRequestID_Propagated(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
}
