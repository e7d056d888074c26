package models

import "time"

type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "ACTIVE"
	AlertStatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatusResolved     AlertStatus = "RESOLVED"
)

type AlertType string

const (
	AlertTypeHigh AlertType = "HIGH"
	AlertTypeLow  AlertType = "LOW"
)

const (
	MetricHeartRate       = "heart_rate"
	MetricOxygenLevel     = "oxygen_level"
	MetricBodyTemperature = "body_temperature"
)

// Violation is one threshold crossing detected while evaluating a reading.
type Violation struct {
	Metric    string    `json:"metric"`
	Type      AlertType `json:"type"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
}

// Alert records one violation. It mutates exactly once, on acknowledgment.
type Alert struct {
	AlertID        string      `json:"alert_id"`
	PatientID      string      `json:"patient_id"`
	Metric         string      `json:"metric"`
	Type           AlertType   `json:"type"`
	Value          float64     `json:"value"`
	Threshold      float64     `json:"threshold"`
	Status         AlertStatus `json:"status"`
	CreatedAt      time.Time   `json:"created_at"`
	AcknowledgedAt *time.Time  `json:"acknowledged_at,omitempty"`
}

type AlertList struct {
	Items []Alert `json:"items"`
	Total int     `json:"total"`
}
