package services

import (
	"context"
	"fmt"
	"time"

	"vmd/internal/broadcast"
	"vmd/internal/models"
	"vmd/internal/repository"
	"vmd/internal/vitals"
)

type VitalServiceInterface interface {
	Ingest(ctx context.Context, input models.ReadingInput) (models.IngestResult, error)
	PatientReadings(ctx context.Context, patientID string, limit int) (models.ReadingList, error)
	Thresholds(ctx context.Context) (models.ThresholdConfig, error)
	UpdateThresholds(ctx context.Context, cfg models.ThresholdConfig) error
}

// VitalService is the ingestion coordinator: one entry point turns an
// incoming reading into persisted state, zero or more alerts, and a live
// broadcast. Steps run in order; a failed step aborts the rest but earlier
// writes are not compensated.
type VitalService struct {
	patients repository.PatientRepositoryInterface
	readings repository.ReadingRepositoryInterface
	settings repository.SettingsRepositoryInterface
	alerts   AlertServiceInterface
	hub      broadcast.HubInterface
}

func NewVitalService(
	patients repository.PatientRepositoryInterface,
	readings repository.ReadingRepositoryInterface,
	settings repository.SettingsRepositoryInterface,
	alerts AlertServiceInterface,
	hub broadcast.HubInterface,
) VitalServiceInterface {
	return &VitalService{
		patients: patients,
		readings: readings,
		settings: settings,
		alerts:   alerts,
		hub:      hub,
	}
}

func (vs *VitalService) Ingest(ctx context.Context, input models.ReadingInput) (models.IngestResult, error) {
	patientID := input.DeviceID

	if err := vs.patients.Upsert(ctx, patientID, fmt.Sprintf("Patient %s", patientID)); err != nil {
		return models.IngestResult{}, err
	}

	cfg, err := vs.Thresholds(ctx)
	if err != nil {
		return models.IngestResult{}, err
	}

	violations := vitals.Evaluate(input.HeartRate, input.OxygenLevel, input.BodyTemperature, cfg)
	for _, v := range violations {
		if _, err := vs.alerts.Create(ctx, patientID, v); err != nil {
			return models.IngestResult{}, err
		}
	}

	status := models.PatientStatusOK
	if len(violations) > 0 {
		status = models.PatientStatusAlert
	}

	err = vs.patients.UpdateVitals(ctx, patientID, input.HeartRate, input.OxygenLevel, input.BodyTemperature, input.Steps, status)
	if err != nil {
		return models.IngestResult{}, err
	}

	reading := models.VitalReading{
		PatientID:       patientID,
		HeartRate:       input.HeartRate,
		OxygenLevel:     input.OxygenLevel,
		BodyTemperature: input.BodyTemperature,
		Steps:           input.Steps,
		Timestamp:       input.Timestamp,
		CreatedAt:       time.Now().UTC(),
	}
	if err := vs.readings.CreateReading(ctx, reading); err != nil {
		return models.IngestResult{}, err
	}

	vs.hub.Publish(models.VitalsChannel, models.VitalUpdate{
		PatientID:       patientID,
		HeartRate:       input.HeartRate,
		OxygenLevel:     input.OxygenLevel,
		BodyTemperature: input.BodyTemperature,
		Steps:           input.Steps,
		Timestamp:       input.Timestamp,
	})

	return models.IngestResult{PatientID: patientID, PatientStatus: status, AlertsCreated: len(violations)}, nil
}

func (vs *VitalService) PatientReadings(ctx context.Context, patientID string, limit int) (models.ReadingList, error) {
	items, err := vs.readings.FindByPatient(ctx, patientID, 0, limit)
	if err != nil {
		return models.ReadingList{}, err
	}
	total, err := vs.readings.CountByPatient(ctx, patientID)
	if err != nil {
		return models.ReadingList{}, err
	}
	return models.ReadingList{Items: items, Total: total}, nil
}

func (vs *VitalService) Thresholds(ctx context.Context) (models.ThresholdConfig, error) {
	cfg, err := vs.settings.GetThresholds(ctx)
	if err != nil {
		return models.ThresholdConfig{}, err
	}
	if cfg == nil {
		return models.DefaultThresholds(), nil
	}
	return *cfg, nil
}

func (vs *VitalService) UpdateThresholds(ctx context.Context, cfg models.ThresholdConfig) error {
	return vs.settings.PutThresholds(ctx, cfg)
}
