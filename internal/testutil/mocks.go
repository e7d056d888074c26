package testutil

import (
	"context"
	"io"
	"sync"
	"time"

	"vmd/internal/models"
	"vmd/internal/providers"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockVitalService implements services.VitalServiceInterface with
// injectable behavior and call recording.
type MockVitalService struct {
	mu          sync.Mutex
	IngestCalls []models.ReadingInput

	IngestFn           func(input models.ReadingInput) (models.IngestResult, error)
	PatientReadingsFn  func(patientID string, limit int) (models.ReadingList, error)
	ThresholdsFn       func() (models.ThresholdConfig, error)
	UpdateThresholdsFn func(cfg models.ThresholdConfig) error
}

func (m *MockVitalService) Ingest(ctx context.Context, input models.ReadingInput) (models.IngestResult, error) {
	m.mu.Lock()
	m.IngestCalls = append(m.IngestCalls, input)
	m.mu.Unlock()
	if m.IngestFn != nil {
		return m.IngestFn(input)
	}
	return models.IngestResult{}, nil
}

func (m *MockVitalService) PatientReadings(ctx context.Context, patientID string, limit int) (models.ReadingList, error) {
	if m.PatientReadingsFn != nil {
		return m.PatientReadingsFn(patientID, limit)
	}
	return models.ReadingList{Items: []models.VitalReading{}}, nil
}

func (m *MockVitalService) Thresholds(ctx context.Context) (models.ThresholdConfig, error) {
	if m.ThresholdsFn != nil {
		return m.ThresholdsFn()
	}
	return models.DefaultThresholds(), nil
}

func (m *MockVitalService) UpdateThresholds(ctx context.Context, cfg models.ThresholdConfig) error {
	if m.UpdateThresholdsFn != nil {
		return m.UpdateThresholdsFn(cfg)
	}
	return nil
}

// MockPatientService implements services.PatientServiceInterface.
type MockPatientService struct {
	ListFn           func(page, pageSize int) (models.PatientList, error)
	GetFn            func(patientID string) (models.Patient, error)
	MonitoredCountFn func() (int, error)
}

func (m *MockPatientService) List(ctx context.Context, page, pageSize int) (models.PatientList, error) {
	if m.ListFn != nil {
		return m.ListFn(page, pageSize)
	}
	return models.PatientList{Items: []models.Patient{}}, nil
}

func (m *MockPatientService) Get(ctx context.Context, patientID string) (models.Patient, error) {
	if m.GetFn != nil {
		return m.GetFn(patientID)
	}
	return models.Patient{}, models.ErrPatientNotFound
}

func (m *MockPatientService) MonitoredCount(ctx context.Context) (int, error) {
	if m.MonitoredCountFn != nil {
		return m.MonitoredCountFn()
	}
	return 0, nil
}

// MockAlertService implements services.AlertServiceInterface.
type MockAlertService struct {
	mu               sync.Mutex
	AcknowledgeCalls []string

	CreateFn        func(patientID string, v models.Violation) (models.Alert, error)
	AcknowledgeFn   func(alertID string) error
	ListFn          func(status models.AlertStatus, skip, limit int) (models.AlertList, error)
	ActiveCountFn   func() (int, error)
	CountInWindowFn func(window time.Duration) (int, error)
}

func (m *MockAlertService) Create(ctx context.Context, patientID string, v models.Violation) (models.Alert, error) {
	if m.CreateFn != nil {
		return m.CreateFn(patientID, v)
	}
	return models.Alert{}, nil
}

func (m *MockAlertService) Acknowledge(ctx context.Context, alertID string) error {
	m.mu.Lock()
	m.AcknowledgeCalls = append(m.AcknowledgeCalls, alertID)
	m.mu.Unlock()
	if m.AcknowledgeFn != nil {
		return m.AcknowledgeFn(alertID)
	}
	return nil
}

func (m *MockAlertService) List(ctx context.Context, status models.AlertStatus, skip, limit int) (models.AlertList, error) {
	if m.ListFn != nil {
		return m.ListFn(status, skip, limit)
	}
	return models.AlertList{Items: []models.Alert{}}, nil
}

func (m *MockAlertService) ActiveCount(ctx context.Context) (int, error) {
	if m.ActiveCountFn != nil {
		return m.ActiveCountFn()
	}
	return 0, nil
}

func (m *MockAlertService) CountInWindow(ctx context.Context, window time.Duration) (int, error) {
	if m.CountInWindowFn != nil {
		return m.CountInWindowFn(window)
	}
	return 0, nil
}

// MockReportService implements services.ReportServiceInterface.
type MockReportService struct {
	AverageHeartRateFn   func(window time.Duration) (float64, error)
	MinOxygenFn          func(window time.Duration) (int, error)
	AlertCountInWindowFn func(window time.Duration) (int, error)
	ReadingsInWindowFn   func(window time.Duration, patientID string) ([]models.VitalReading, error)
	KPIsFn               func(window time.Duration) (models.KPIReport, error)
	SummaryFn            func(window time.Duration) (models.SummaryReport, error)
	ExportCSVFn          func(w io.Writer, window time.Duration, patientID string) error
}

func (m *MockReportService) AverageHeartRate(ctx context.Context, window time.Duration) (float64, error) {
	if m.AverageHeartRateFn != nil {
		return m.AverageHeartRateFn(window)
	}
	return 0, nil
}

func (m *MockReportService) MinOxygen(ctx context.Context, window time.Duration) (int, error) {
	if m.MinOxygenFn != nil {
		return m.MinOxygenFn(window)
	}
	return 0, nil
}

func (m *MockReportService) AlertCountInWindow(ctx context.Context, window time.Duration) (int, error) {
	if m.AlertCountInWindowFn != nil {
		return m.AlertCountInWindowFn(window)
	}
	return 0, nil
}

func (m *MockReportService) ReadingsInWindow(ctx context.Context, window time.Duration, patientID string) ([]models.VitalReading, error) {
	if m.ReadingsInWindowFn != nil {
		return m.ReadingsInWindowFn(window, patientID)
	}
	return []models.VitalReading{}, nil
}

func (m *MockReportService) KPIs(ctx context.Context, window time.Duration) (models.KPIReport, error) {
	if m.KPIsFn != nil {
		return m.KPIsFn(window)
	}
	return models.KPIReport{}, nil
}

func (m *MockReportService) Summary(ctx context.Context, window time.Duration) (models.SummaryReport, error) {
	if m.SummaryFn != nil {
		return m.SummaryFn(window)
	}
	return models.SummaryReport{}, nil
}

func (m *MockReportService) ExportCSV(ctx context.Context, w io.Writer, window time.Duration, patientID string) error {
	if m.ExportCSVFn != nil {
		return m.ExportCSVFn(w, window, patientID)
	}
	return nil
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
	Closed       bool
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {
	m.Closed = true
}
