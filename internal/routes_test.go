package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vmd/internal/broadcast"
	"vmd/internal/controllers"
	"vmd/internal/models"
	"vmd/internal/providers"
	"vmd/internal/testutil"
)

type routeTestMetrics struct{}

func (m *routeTestMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (m *routeTestMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *routeTestMetrics) IncCacheHits()                                    {}
func (m *routeTestMetrics) IncCacheMisses()                                  {}
func (m *routeTestMetrics) IncIngestTotal(_ models.PatientStatus)            {}
func (m *routeTestMetrics) IncAlertsCreated(_ int)                           {}
func (m *routeTestMetrics) ObservePersistenceDuration(_ time.Duration)       {}

func testRouter() providers.RouterProviderInterface {
	logger := &testutil.MockLogger{}
	cache := testutil.NewMockCache()
	hub := broadcast.NewHub(0)

	vitalsController := controllers.NewVitalsController(logger, &testutil.MockVitalService{}, cache, &routeTestMetrics{})
	patientsController := controllers.NewPatientsController(logger, &testutil.MockPatientService{}, cache)
	alertsController := controllers.NewAlertsController(logger, &testutil.MockAlertService{})
	reportsController := controllers.NewReportsController(logger, &testutil.MockReportService{})
	liveController := controllers.NewLiveController(logger, hub)

	return InitRoutes(vitalsController, patientsController, alertsController, reportsController, liveController)
}

func TestInitRoutes_RegistersAllEndpoints(t *testing.T) {
	routes := testRouter().GetRoutes()

	require.Len(t, routes, 11)

	urls := make([]string, len(routes))
	for i, r := range routes {
		urls[i] = r.Url
	}

	assert.Contains(t, urls, "/vitals")
	assert.Contains(t, urls, "/patients")
	assert.Contains(t, urls, "/patient")
	assert.Contains(t, urls, "/patient/readings")
	assert.Contains(t, urls, "/alerts")
	assert.Contains(t, urls, "/alerts/acknowledge")
	assert.Contains(t, urls, "/settings/thresholds")
	assert.Contains(t, urls, "/reports/summary")
	assert.Contains(t, urls, "/reports/export")
	assert.Contains(t, urls, "/overview/kpis")
	assert.Contains(t, urls, "/live")
}

func TestInitRoutes_MethodEnforcement(t *testing.T) {
	routes := testRouter().GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	// POST-only endpoint rejects GET
	req := httptest.NewRequest(http.MethodGet, "/vitals", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	// GET-only endpoint rejects POST
	req = httptest.NewRequest(http.MethodPost, "/patients", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestInitRoutes_ThresholdsServesGetAndPut(t *testing.T) {
	routes := testRouter().GetRoutes()

	mux := http.NewServeMux()
	for _, r := range routes {
		mux.Handle(r.Url, r.Handler)
	}

	req := httptest.NewRequest(http.MethodGet, "/settings/thresholds", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodDelete, "/settings/thresholds", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
