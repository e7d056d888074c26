package controllers

import (
	"fmt"
	"net/http"

	json "github.com/goccy/go-json"
	"vmd/internal/broadcast"
	"vmd/internal/models"
	"vmd/internal/providers"
)

type LiveController struct {
	logger providers.Logger
	hub    broadcast.HubInterface
}

func NewLiveController(logger providers.Logger, hub broadcast.HubInterface) *LiveController {
	return &LiveController{logger: logger, hub: hub}
}

// StreamVitals serves the live feed as server-sent events. The subscription
// lives exactly as long as the request: when the client disconnects the
// request context is cancelled and the hub deregisters the queue.
func (lc *LiveController) StreamVitals(w http.ResponseWriter, r *http.Request) {
	// ResponseController reaches the flusher through middleware wrappers.
	flusher := http.NewResponseController(w)
	patientFilter := r.URL.Query().Get("patient_id")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := flusher.Flush(); err != nil {
		lc.logger.Errorf(providers.TypeGet, "Streaming unsupported: %s", err)
		return
	}

	sub := lc.hub.Subscribe(r.Context(), models.VitalsChannel)
	defer sub.Close()

	for msg := range sub.C() {
		update, ok := msg.(models.VitalUpdate)
		if !ok {
			continue
		}
		// Filtering happens consumer-side; the hub is payload-agnostic.
		if patientFilter != "" && update.PatientID != patientFilter {
			continue
		}

		gson, err := json.Marshal(update)
		if err != nil {
			lc.logger.Errorf(providers.TypeGet, "Live update encode failed: %s", err)
			continue
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", gson); err != nil {
			return
		}
		if err := flusher.Flush(); err != nil {
			return
		}
	}
}
