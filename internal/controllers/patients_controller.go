package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"vmd/internal/models"
	"vmd/internal/providers"
	"vmd/internal/services"
)

type PatientsController struct {
	logger  providers.Logger
	service services.PatientServiceInterface
	cache   providers.CacheProviderInterface
}

func NewPatientsController(logger providers.Logger, service services.PatientServiceInterface, cache providers.CacheProviderInterface) *PatientsController {
	return &PatientsController{logger: logger, service: service, cache: cache}
}

func (pc *PatientsController) GetPatients(w http.ResponseWriter, r *http.Request) {
	page := intQuery(r, "page", 1)
	pageSize := intQuery(r, "page_size", 20)

	serveFromCacheOrCompute(w, pc.cache, fmt.Sprintf("patients:%d:%d", page, pageSize), func() (any, error) {
		return pc.service.List(r.Context(), page, pageSize)
	})
}

func (pc *PatientsController) GetPatient(w http.ResponseWriter, r *http.Request) {
	patientID := r.URL.Query().Get("id")
	if patientID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	patient, err := pc.service.Get(r.Context(), patientID)
	if errors.Is(err, models.ErrPatientNotFound) {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, patient)
}
