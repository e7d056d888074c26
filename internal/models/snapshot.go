package models

// Snapshot is the on-disk persistence format for the in-memory store.
type Snapshot struct {
	Patients   []Patient        `json:"patients"`
	Readings   []VitalReading   `json:"readings"`
	Alerts     []Alert          `json:"alerts"`
	Thresholds *ThresholdConfig `json:"thresholds,omitempty"`
}
