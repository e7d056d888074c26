package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"vmd/internal/models"
)

// MemoryStore backs all four collections with process memory. It is the
// default storage adapter of the daemon; durability comes from the
// snapshot layer that saves and restores it around restarts.
type MemoryStore struct {
	mu         sync.RWMutex
	patients   map[string]*models.Patient
	readings   []models.VitalReading
	alerts     []models.Alert
	alertIdx   map[string]int
	thresholds *models.ThresholdConfig
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		patients: make(map[string]*models.Patient),
		alertIdx: make(map[string]int),
	}
}

// --- patients ---

func (s *MemoryStore) Upsert(_ context.Context, patientID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if p, ok := s.patients[patientID]; ok {
		p.PatientName = name
		p.LastUpdate = now
		return nil
	}
	s.patients[patientID] = &models.Patient{
		PatientID:   patientID,
		PatientName: name,
		Status:      models.PatientStatusOK,
		LastUpdate:  now,
		CreatedAt:   now,
	}
	return nil
}

func (s *MemoryStore) UpdateVitals(_ context.Context, patientID string, heartRate, oxygenLevel int, bodyTemp float64, steps int, status models.PatientStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.patients[patientID]
	if !ok {
		return models.ErrPatientNotFound
	}
	p.LastHeartRate = heartRate
	p.LastOxygenLevel = oxygenLevel
	p.LastBodyTemperature = bodyTemp
	p.LastSteps = steps
	p.Status = status
	p.LastUpdate = time.Now().UTC()
	return nil
}

func (s *MemoryStore) FindByPatientID(_ context.Context, patientID string) (*models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.patients[patientID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) FindAll(_ context.Context, skip, limit int) ([]models.Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]models.Patient, 0, len(s.patients))
	for _, p := range s.patients {
		all = append(all, *p)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].PatientID < all[j].PatientID
	})
	return paginate(all, skip, limit), nil
}

func (s *MemoryStore) CountAll(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.patients), nil
}

func (s *MemoryStore) CountMonitored(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, p := range s.patients {
		if !p.LastUpdate.IsZero() {
			n++
		}
	}
	return n, nil
}

// --- readings ---

func (s *MemoryStore) CreateReading(_ context.Context, reading models.VitalReading) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readings = append(s.readings, reading)
	return nil
}

func (s *MemoryStore) FindByPatient(_ context.Context, patientID string, skip, limit int) ([]models.VitalReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.VitalReading, 0)
	for _, r := range s.readings {
		if r.PatientID == patientID {
			matched = append(matched, r)
		}
	}
	sortNewestFirst(matched)
	return paginate(matched, skip, limit), nil
}

func (s *MemoryStore) CountByPatient(_ context.Context, patientID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.readings {
		if r.PatientID == patientID {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) AverageHeartRateSince(_ context.Context, since time.Time) (float64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum, n := 0, 0
	for _, r := range s.readings {
		if !r.Timestamp.Before(since) {
			sum += r.HeartRate
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return float64(sum) / float64(n), true, nil
}

func (s *MemoryStore) MinOxygenSince(_ context.Context, since time.Time) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	min, found := 0, false
	for _, r := range s.readings {
		if r.Timestamp.Before(since) {
			continue
		}
		if !found || r.OxygenLevel < min {
			min = r.OxygenLevel
			found = true
		}
	}
	return min, found, nil
}

func (s *MemoryStore) FindSince(_ context.Context, since time.Time, patientID string, limit int) ([]models.VitalReading, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.VitalReading, 0)
	for _, r := range s.readings {
		if r.Timestamp.Before(since) {
			continue
		}
		if patientID != "" && r.PatientID != patientID {
			continue
		}
		matched = append(matched, r)
	}
	sortNewestFirst(matched)
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// --- alerts ---

func (s *MemoryStore) CreateAlert(_ context.Context, alert models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alertIdx[alert.AlertID] = len(s.alerts)
	s.alerts = append(s.alerts, alert)
	return nil
}

func (s *MemoryStore) FindByAlertID(_ context.Context, alertID string) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.alertIdx[alertID]
	if !ok {
		return nil, nil
	}
	cp := s.alerts[i]
	return &cp, nil
}

func (s *MemoryStore) FindByStatus(_ context.Context, status models.AlertStatus, skip, limit int) ([]models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]models.Alert, 0)
	for _, a := range s.alerts {
		if a.Status == status {
			matched = append(matched, a)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, skip, limit), nil
}

func (s *MemoryStore) CountByStatus(_ context.Context, status models.AlertStatus) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.alerts {
		if a.Status == status {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CountSince(_ context.Context, since time.Time) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, a := range s.alerts {
		if !a.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) AcknowledgeIfActive(_ context.Context, alertID string, ackAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.alertIdx[alertID]
	if !ok {
		return false, nil
	}
	if s.alerts[i].Status != models.AlertStatusActive {
		return false, nil
	}
	s.alerts[i].Status = models.AlertStatusAcknowledged
	t := ackAt
	s.alerts[i].AcknowledgedAt = &t
	return true, nil
}

// --- thresholds ---

func (s *MemoryStore) GetThresholds(_ context.Context) (*models.ThresholdConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.thresholds == nil {
		return nil, nil
	}
	cp := *s.thresholds
	return &cp, nil
}

func (s *MemoryStore) PutThresholds(_ context.Context, cfg models.ThresholdConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thresholds = &cfg
	return nil
}

// --- snapshot ---

func (s *MemoryStore) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &models.Snapshot{
		Patients: make([]models.Patient, 0, len(s.patients)),
		Readings: append([]models.VitalReading(nil), s.readings...),
		Alerts:   append([]models.Alert(nil), s.alerts...),
	}
	for _, p := range s.patients {
		snap.Patients = append(snap.Patients, *p)
	}
	sort.Slice(snap.Patients, func(i, j int) bool {
		return snap.Patients[i].PatientID < snap.Patients[j].PatientID
	})
	if s.thresholds != nil {
		cp := *s.thresholds
		snap.Thresholds = &cp
	}
	return snap
}

func (s *MemoryStore) Restore(snap *models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.patients = make(map[string]*models.Patient, len(snap.Patients))
	for i := range snap.Patients {
		p := snap.Patients[i]
		s.patients[p.PatientID] = &p
	}
	s.readings = append([]models.VitalReading(nil), snap.Readings...)
	s.alerts = append([]models.Alert(nil), snap.Alerts...)
	s.alertIdx = make(map[string]int, len(s.alerts))
	for i, a := range s.alerts {
		s.alertIdx[a.AlertID] = i
	}
	s.thresholds = nil
	if snap.Thresholds != nil {
		cp := *snap.Thresholds
		s.thresholds = &cp
	}
}

func sortNewestFirst(readings []models.VitalReading) {
	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Timestamp.After(readings[j].Timestamp)
	})
}

func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip > len(items) {
		skip = len(items)
	}
	items = items[skip:]
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}
