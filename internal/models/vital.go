package models

import "time"

// ReadingInput is the ingestion payload as sent by monitoring devices.
type ReadingInput struct {
	DeviceID        string    `json:"device_id" validate:"required"`
	HeartRate       int       `json:"heart_rate" validate:"int|min:0|max:300"`
	OxygenLevel     int       `json:"oxygen_level" validate:"int|min:0|max:100"`
	BodyTemperature float64   `json:"body_temperature" validate:"min:30.0|max:45.0"`
	Steps           int       `json:"steps" validate:"int|min:0"`
	Timestamp       time.Time `json:"timestamp" validate:"required"`
}

// VitalReading is an append-only stored reading. Timestamp carries the
// device clock, CreatedAt the ingestion time.
type VitalReading struct {
	PatientID       string    `json:"patient_id"`
	HeartRate       int       `json:"heart_rate"`
	OxygenLevel     int       `json:"oxygen_level"`
	BodyTemperature float64   `json:"body_temperature"`
	Steps           int       `json:"steps"`
	Timestamp       time.Time `json:"timestamp"`
	CreatedAt       time.Time `json:"created_at"`
}

type ReadingList struct {
	Items []VitalReading `json:"items"`
	Total int            `json:"total"`
}

type IngestResult struct {
	PatientID     string        `json:"patient_id"`
	PatientStatus PatientStatus `json:"patient_status"`
	AlertsCreated int           `json:"alerts_created"`
}
