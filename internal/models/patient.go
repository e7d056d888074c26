package models

import "time"

type PatientStatus string

const (
	PatientStatusOK       PatientStatus = "OK"
	PatientStatusAlert    PatientStatus = "ALERT"
	PatientStatusCritical PatientStatus = "CRITICAL"
)

// Patient is created on the first reading for an unseen external id and
// updated on every subsequent one. Never deleted.
type Patient struct {
	PatientID           string        `json:"patient_id"`
	PatientName         string        `json:"patient_name"`
	Status              PatientStatus `json:"status"`
	LastHeartRate       int           `json:"last_heart_rate"`
	LastOxygenLevel     int           `json:"last_oxygen_level"`
	LastBodyTemperature float64       `json:"last_body_temperature"`
	LastSteps           int           `json:"last_steps"`
	LastUpdate          time.Time     `json:"last_update"`
	CreatedAt           time.Time     `json:"created_at"`
}

type PatientList struct {
	Items    []Patient `json:"items"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
