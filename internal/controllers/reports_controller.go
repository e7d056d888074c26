package controllers

import (
	"net/http"

	"vmd/internal/providers"
	"vmd/internal/services"
)

type ReportsController struct {
	logger  providers.Logger
	service services.ReportServiceInterface
}

func NewReportsController(logger providers.Logger, service services.ReportServiceInterface) *ReportsController {
	return &ReportsController{logger: logger, service: service}
}

func (rc *ReportsController) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := rc.service.Summary(r.Context(), windowQuery(r))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (rc *ReportsController) GetKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := rc.service.KPIs(r.Context(), windowQuery(r))
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, kpis)
}

func (rc *ReportsController) ExportReadings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="vitals_report.csv"`)

	err := rc.service.ExportCSV(r.Context(), w, windowQuery(r), r.URL.Query().Get("patient_id"))
	if err != nil {
		rc.logger.Errorf(providers.TypeGet, "CSV export failed: %s", err)
		// Headers may already be written; nothing more to do.
	}
}
