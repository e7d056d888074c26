package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"vmd/internal/models"
	"vmd/internal/repository"
)

type AlertServiceInterface interface {
	Create(ctx context.Context, patientID string, v models.Violation) (models.Alert, error)
	Acknowledge(ctx context.Context, alertID string) error
	List(ctx context.Context, status models.AlertStatus, skip, limit int) (models.AlertList, error)
	ActiveCount(ctx context.Context) (int, error)
	CountInWindow(ctx context.Context, window time.Duration) (int, error)
}

// AlertService owns the alert state machine: ACTIVE on creation, a single
// ACTIVE -> ACKNOWLEDGED transition, nothing else.
type AlertService struct {
	alerts repository.AlertRepositoryInterface
}

func NewAlertService(alerts repository.AlertRepositoryInterface) AlertServiceInterface {
	return &AlertService{alerts: alerts}
}

func newAlertID() string {
	u := uuid.New()
	return fmt.Sprintf("ALT-%X", u[:4])
}

func (as *AlertService) Create(ctx context.Context, patientID string, v models.Violation) (models.Alert, error) {
	alert := models.Alert{
		AlertID:   newAlertID(),
		PatientID: patientID,
		Metric:    v.Metric,
		Type:      v.Type,
		Value:     v.Value,
		Threshold: v.Threshold,
		Status:    models.AlertStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := as.alerts.CreateAlert(ctx, alert); err != nil {
		return models.Alert{}, err
	}
	return alert, nil
}

func (as *AlertService) Acknowledge(ctx context.Context, alertID string) error {
	alert, err := as.alerts.FindByAlertID(ctx, alertID)
	if err != nil {
		return err
	}
	if alert == nil {
		return models.ErrAlertNotFound
	}
	if alert.Status != models.AlertStatusActive {
		return models.ErrAlertAlreadyAcked
	}

	ok, err := as.alerts.AcknowledgeIfActive(ctx, alertID, time.Now().UTC())
	if err != nil {
		return err
	}
	if !ok {
		// Lost the race to a concurrent acknowledger.
		return models.ErrAlertAlreadyAcked
	}
	return nil
}

func (as *AlertService) List(ctx context.Context, status models.AlertStatus, skip, limit int) (models.AlertList, error) {
	if status == "" {
		status = models.AlertStatusActive
	}
	items, err := as.alerts.FindByStatus(ctx, status, skip, limit)
	if err != nil {
		return models.AlertList{}, err
	}
	total, err := as.alerts.CountByStatus(ctx, models.AlertStatusActive)
	if err != nil {
		return models.AlertList{}, err
	}
	return models.AlertList{Items: items, Total: total}, nil
}

func (as *AlertService) ActiveCount(ctx context.Context) (int, error) {
	return as.alerts.CountByStatus(ctx, models.AlertStatusActive)
}

func (as *AlertService) CountInWindow(ctx context.Context, window time.Duration) (int, error) {
	return as.alerts.CountSince(ctx, time.Now().UTC().Add(-window))
}
