package services

import (
	"context"
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"time"

	"vmd/internal/models"
	"vmd/internal/repository"
)

// Readings returned by a single window query are capped to bound response
// size.
const exportMaxRows = 1000

type ReportServiceInterface interface {
	AverageHeartRate(ctx context.Context, window time.Duration) (float64, error)
	MinOxygen(ctx context.Context, window time.Duration) (int, error)
	AlertCountInWindow(ctx context.Context, window time.Duration) (int, error)
	ReadingsInWindow(ctx context.Context, window time.Duration, patientID string) ([]models.VitalReading, error)
	KPIs(ctx context.Context, window time.Duration) (models.KPIReport, error)
	Summary(ctx context.Context, window time.Duration) (models.SummaryReport, error)
	ExportCSV(ctx context.Context, w io.Writer, window time.Duration, patientID string) error
}

// ReportService computes windowed statistics over the persisted store at
// call time. Nothing is cached or incrementally maintained.
type ReportService struct {
	patients repository.PatientRepositoryInterface
	readings repository.ReadingRepositoryInterface
	alerts   repository.AlertRepositoryInterface
}

func NewReportService(
	patients repository.PatientRepositoryInterface,
	readings repository.ReadingRepositoryInterface,
	alerts repository.AlertRepositoryInterface,
) ReportServiceInterface {
	return &ReportService{patients: patients, readings: readings, alerts: alerts}
}

func (rs *ReportService) AverageHeartRate(ctx context.Context, window time.Duration) (float64, error) {
	avg, ok, err := rs.readings.AverageHeartRateSince(ctx, time.Now().UTC().Add(-window))
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return math.Round(avg*10) / 10, nil
}

func (rs *ReportService) MinOxygen(ctx context.Context, window time.Duration) (int, error) {
	min, ok, err := rs.readings.MinOxygenSince(ctx, time.Now().UTC().Add(-window))
	if err != nil || !ok {
		return 0, err
	}
	return min, nil
}

func (rs *ReportService) AlertCountInWindow(ctx context.Context, window time.Duration) (int, error) {
	return rs.alerts.CountSince(ctx, time.Now().UTC().Add(-window))
}

func (rs *ReportService) ReadingsInWindow(ctx context.Context, window time.Duration, patientID string) ([]models.VitalReading, error) {
	return rs.readings.FindSince(ctx, time.Now().UTC().Add(-window), patientID, exportMaxRows)
}

func (rs *ReportService) KPIs(ctx context.Context, window time.Duration) (models.KPIReport, error) {
	monitored, err := rs.patients.CountMonitored(ctx)
	if err != nil {
		return models.KPIReport{}, err
	}
	active, err := rs.alerts.CountByStatus(ctx, models.AlertStatusActive)
	if err != nil {
		return models.KPIReport{}, err
	}
	avg, err := rs.AverageHeartRate(ctx, window)
	if err != nil {
		return models.KPIReport{}, err
	}
	return models.KPIReport{
		PatientsMonitored: monitored,
		ActiveAlerts:      active,
		AverageHeartRate:  avg,
		WindowMinutes:     int(window.Minutes()),
	}, nil
}

func (rs *ReportService) Summary(ctx context.Context, window time.Duration) (models.SummaryReport, error) {
	avg, err := rs.AverageHeartRate(ctx, window)
	if err != nil {
		return models.SummaryReport{}, err
	}
	minO2, err := rs.MinOxygen(ctx, window)
	if err != nil {
		return models.SummaryReport{}, err
	}
	count, err := rs.AlertCountInWindow(ctx, window)
	if err != nil {
		return models.SummaryReport{}, err
	}
	return models.SummaryReport{
		AverageHeartRate:   avg,
		MinimumOxygenLevel: minO2,
		AlertCount:         count,
		WindowMinutes:      int(window.Minutes()),
	}, nil
}

func (rs *ReportService) ExportCSV(ctx context.Context, w io.Writer, window time.Duration, patientID string) error {
	readings, err := rs.ReadingsInWindow(ctx, window, patientID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"patient_id", "heart_rate", "oxygen_level", "body_temperature", "steps", "timestamp"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range readings {
		row := []string{
			r.PatientID,
			strconv.Itoa(r.HeartRate),
			strconv.Itoa(r.OxygenLevel),
			strconv.FormatFloat(r.BodyTemperature, 'f', -1, 64),
			strconv.Itoa(r.Steps),
			r.Timestamp.UTC().Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
