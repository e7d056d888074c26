package models

type KPIReport struct {
	PatientsMonitored int     `json:"patients_monitored"`
	ActiveAlerts      int     `json:"active_alerts"`
	AverageHeartRate  float64 `json:"average_heart_rate"`
	WindowMinutes     int     `json:"window_minutes"`
}

type SummaryReport struct {
	AverageHeartRate   float64 `json:"average_heart_rate"`
	MinimumOxygenLevel int     `json:"minimum_oxygen_level"`
	AlertCount         int     `json:"alert_count"`
	WindowMinutes      int     `json:"window_minutes"`
}
