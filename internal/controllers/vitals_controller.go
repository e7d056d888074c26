package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/gookit/validate"
	"vmd/internal/models"
	"vmd/internal/providers"
	"vmd/internal/services"
)

const thresholdsCacheKey = "thresholds"

type VitalsController struct {
	logger  providers.Logger
	service services.VitalServiceInterface
	cache   providers.CacheProviderInterface
	metrics providers.MetricsProviderInterface
}

func NewVitalsController(logger providers.Logger, service services.VitalServiceInterface, cache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface) *VitalsController {
	return &VitalsController{
		logger:  logger,
		service: service,
		cache:   cache,
		metrics: metrics,
	}
}

// ReceiveVitals is the single ingestion entry point. Bounds are checked
// here; the coordinator assumes valid input.
func (vc *VitalsController) ReceiveVitals(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.ReadingInput
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	v := validate.Struct(&payload)
	if !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return
	}

	result, err := vc.service.Ingest(r.Context(), payload)
	if err != nil {
		vc.logger.Errorf(providers.TypePost, "Ingest failed for device %s: %s", payload.DeviceID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	vc.metrics.IncIngestTotal(result.PatientStatus)
	if result.AlertsCreated > 0 {
		vc.metrics.IncAlertsCreated(result.AlertsCreated)
	}
	writeJSON(w, http.StatusOK, result)
}

func (vc *VitalsController) GetPatientReadings(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("id")
	if patientID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	limit := intQuery(r, "limit", 10)

	list, err := vc.service.PatientReadings(r.Context(), patientID, limit)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (vc *VitalsController) GetThresholds(w http.ResponseWriter, r *http.Request) {
	serveFromCacheOrCompute(w, vc.cache, thresholdsCacheKey, func() (any, error) {
		return vc.service.Thresholds(r.Context())
	})
}

func (vc *VitalsController) UpdateThresholds(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload models.ThresholdConfig
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	v := validate.Struct(&payload)
	if !v.Validate() {
		http.Error(w, v.Errors.One(), http.StatusBadRequest)
		return
	}

	if err := vc.service.UpdateThresholds(r.Context(), payload); err != nil {
		vc.logger.Errorf(providers.TypePost, "Threshold update failed: %s", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	// Evaluation picks up the new bounds immediately; the cached GET
	// response must not outlive them.
	vc.cache.Del(thresholdsCacheKey)
	writeJSON(w, http.StatusOK, payload)
}
