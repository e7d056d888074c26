package models

import "time"

// VitalsChannel is the hub channel the coordinator publishes on.
const VitalsChannel = "vitals"

// VitalUpdate is the live-feed message delivered to hub subscribers.
type VitalUpdate struct {
	PatientID       string    `json:"patient_id"`
	HeartRate       int       `json:"heart_rate"`
	OxygenLevel     int       `json:"oxygen_level"`
	BodyTemperature float64   `json:"body_temperature"`
	Steps           int       `json:"steps"`
	Timestamp       time.Time `json:"timestamp"`
}
