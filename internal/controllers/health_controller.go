package controllers

import (
	"fmt"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"vmd/internal/broadcast"
	"vmd/internal/models"
	"vmd/internal/services"
)

type HealthController struct {
	patients  services.PatientServiceInterface
	alerts    services.AlertServiceInterface
	hub       broadcast.HubInterface
	startTime time.Time
}

type healthResponse struct {
	Status            string  `json:"status"`
	Uptime            string  `json:"uptime"`
	UptimeSeconds     float64 `json:"uptime_seconds"`
	PatientsMonitored int     `json:"patients_monitored"`
	ActiveAlerts      int     `json:"active_alerts"`
	LiveSubscribers   int     `json:"live_subscribers"`
}

func (hc *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	monitored, err := hc.patients.MonitoredCount(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	active, err := hc.alerts.ActiveCount(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	uptime := time.Since(hc.startTime)
	resp := healthResponse{
		Status:            "ok",
		Uptime:            formatDuration(uptime),
		UptimeSeconds:     uptime.Seconds(),
		PatientsMonitored: monitored,
		ActiveAlerts:      active,
		LiveSubscribers:   hc.hub.SubscriberCount(models.VitalsChannel),
	}

	gson, err := json.Marshal(resp)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

func formatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
}

func NewHealthController(patients services.PatientServiceInterface, alerts services.AlertServiceInterface, hub broadcast.HubInterface) *HealthController {
	return &HealthController{
		patients:  patients,
		alerts:    alerts,
		hub:       hub,
		startTime: time.Now(),
	}
}
