package services

import (
	"context"

	"vmd/internal/models"
	"vmd/internal/repository"
)

type PatientServiceInterface interface {
	List(ctx context.Context, page, pageSize int) (models.PatientList, error)
	Get(ctx context.Context, patientID string) (models.Patient, error)
	MonitoredCount(ctx context.Context) (int, error)
}

// PatientService is read-side plumbing over the patient collection. All
// writes to patients go through the ingestion coordinator.
type PatientService struct {
	patients repository.PatientRepositoryInterface
}

func NewPatientService(patients repository.PatientRepositoryInterface) PatientServiceInterface {
	return &PatientService{patients: patients}
}

func (ps *PatientService) List(ctx context.Context, page, pageSize int) (models.PatientList, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	items, err := ps.patients.FindAll(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return models.PatientList{}, err
	}
	total, err := ps.patients.CountAll(ctx)
	if err != nil {
		return models.PatientList{}, err
	}
	return models.PatientList{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (ps *PatientService) Get(ctx context.Context, patientID string) (models.Patient, error) {
	p, err := ps.patients.FindByPatientID(ctx, patientID)
	if err != nil {
		return models.Patient{}, err
	}
	if p == nil {
		return models.Patient{}, models.ErrPatientNotFound
	}
	return *p, nil
}

func (ps *PatientService) MonitoredCount(ctx context.Context) (int, error) {
	return ps.patients.CountMonitored(ctx)
}
