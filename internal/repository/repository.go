package repository

import (
	"context"
	"time"

	"vmd/internal/models"
)

// The core never talks to durable storage directly; it consumes these
// contracts. Alternative backends substitute in tests and deployments.

type PatientRepositoryInterface interface {
	// Upsert creates the patient if absent and refreshes its last-update
	// timestamp. Must be atomic: concurrent upserts for the same unseen
	// id never create duplicates.
	Upsert(ctx context.Context, patientID, name string) error
	UpdateVitals(ctx context.Context, patientID string, heartRate, oxygenLevel int, bodyTemp float64, steps int, status models.PatientStatus) error
	FindByPatientID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, skip, limit int) ([]models.Patient, error)
	CountAll(ctx context.Context) (int, error)
	// CountMonitored counts patients that have received at least one update.
	CountMonitored(ctx context.Context) (int, error)
}

type ReadingRepositoryInterface interface {
	CreateReading(ctx context.Context, reading models.VitalReading) error
	FindByPatient(ctx context.Context, patientID string, skip, limit int) ([]models.VitalReading, error)
	CountByPatient(ctx context.Context, patientID string) (int, error)
	// AverageHeartRateSince reports ok=false when no reading qualifies.
	AverageHeartRateSince(ctx context.Context, since time.Time) (avg float64, ok bool, err error)
	MinOxygenSince(ctx context.Context, since time.Time) (min int, ok bool, err error)
	// FindSince returns readings with event timestamp >= since, newest
	// first, optionally scoped to one patient, capped at limit.
	FindSince(ctx context.Context, since time.Time, patientID string, limit int) ([]models.VitalReading, error)
}

type AlertRepositoryInterface interface {
	CreateAlert(ctx context.Context, alert models.Alert) error
	FindByAlertID(ctx context.Context, alertID string) (*models.Alert, error)
	FindByStatus(ctx context.Context, status models.AlertStatus, skip, limit int) ([]models.Alert, error)
	CountByStatus(ctx context.Context, status models.AlertStatus) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	// AcknowledgeIfActive flips ACTIVE to ACKNOWLEDGED and stamps ackAt,
	// conditioned on the alert still being ACTIVE at the moment of write.
	// Reports whether the transition happened.
	AcknowledgeIfActive(ctx context.Context, alertID string, ackAt time.Time) (bool, error)
}

type SettingsRepositoryInterface interface {
	// GetThresholds returns nil when no config has been stored yet.
	GetThresholds(ctx context.Context) (*models.ThresholdConfig, error)
	PutThresholds(ctx context.Context, cfg models.ThresholdConfig) error
}
