package internal

import (
	"net/http"

	"vmd/internal/controllers"
	"vmd/internal/providers"
)

func InitRoutes(
	vitalsController *controllers.VitalsController,
	patientsController *controllers.PatientsController,
	alertsController *controllers.AlertsController,
	reportsController *controllers.ReportsController,
	liveController *controllers.LiveController,
) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Post("/vitals", http.HandlerFunc(vitalsController.ReceiveVitals))
	routers.Get("/patients", http.HandlerFunc(patientsController.GetPatients))
	routers.Get("/patient", http.HandlerFunc(patientsController.GetPatient))
	routers.Get("/patient/readings", http.HandlerFunc(vitalsController.GetPatientReadings))
	routers.Get("/alerts", http.HandlerFunc(alertsController.GetAlerts))
	routers.Post("/alerts/acknowledge", http.HandlerFunc(alertsController.AcknowledgeAlert))
	routers.Get("/settings/thresholds", http.HandlerFunc(vitalsController.GetThresholds))
	routers.Put("/settings/thresholds", http.HandlerFunc(vitalsController.UpdateThresholds))
	routers.Get("/reports/summary", http.HandlerFunc(reportsController.GetSummary))
	routers.Get("/reports/export", http.HandlerFunc(reportsController.ExportReadings))
	routers.Get("/overview/kpis", http.HandlerFunc(reportsController.GetKPIs))
	routers.Get("/live", http.HandlerFunc(liveController.StreamVitals))

	return routers
}
