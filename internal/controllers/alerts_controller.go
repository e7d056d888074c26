package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"
	"vmd/internal/models"
	"vmd/internal/providers"
	"vmd/internal/services"
)

type AlertsController struct {
	logger  providers.Logger
	service services.AlertServiceInterface
}

func NewAlertsController(logger providers.Logger, service services.AlertServiceInterface) *AlertsController {
	return &AlertsController{logger: logger, service: service}
}

func (ac *AlertsController) GetAlerts(w http.ResponseWriter, r *http.Request) {
	status := models.AlertStatus(r.URL.Query().Get("status"))
	skip := intQuery(r, "skip", 0)
	limit := intQuery(r, "limit", 50)

	list, err := ac.service.List(r.Context(), status, skip, limit)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

type acknowledgeRequest struct {
	AlertID string `json:"alert_id"`
}

type acknowledgeResponse struct {
	AlertID string `json:"alert_id"`
	Status  string `json:"status"`
}

func (ac *AlertsController) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload acknowledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.AlertID == "" {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	err := ac.service.Acknowledge(r.Context(), payload.AlertID)
	switch {
	case errors.Is(err, models.ErrAlertNotFound):
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	case errors.Is(err, models.ErrAlertAlreadyAcked):
		http.Error(w, "Conflict", http.StatusConflict)
		return
	case err != nil:
		ac.logger.Errorf(providers.TypePost, "Acknowledge failed for %s: %s", payload.AlertID, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, acknowledgeResponse{AlertID: payload.AlertID, Status: "acknowledged"})
}
