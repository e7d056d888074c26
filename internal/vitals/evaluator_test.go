package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vmd/internal/models"
)

func TestEvaluate_AllNormal(t *testing.T) {
	violations := Evaluate(80, 98, 36.6, models.DefaultThresholds())
	assert.Empty(t, violations)
}

func TestEvaluate_HighHeartRate(t *testing.T) {
	violations := Evaluate(140, 98, 36.6, models.DefaultThresholds())

	require.Len(t, violations, 1)
	assert.Equal(t, models.MetricHeartRate, violations[0].Metric)
	assert.Equal(t, models.AlertTypeHigh, violations[0].Type)
	assert.Equal(t, 140.0, violations[0].Value)
	assert.Equal(t, 120.0, violations[0].Threshold)
}

func TestEvaluate_LowHeartRate(t *testing.T) {
	violations := Evaluate(40, 98, 36.6, models.DefaultThresholds())

	require.Len(t, violations, 1)
	assert.Equal(t, models.MetricHeartRate, violations[0].Metric)
	assert.Equal(t, models.AlertTypeLow, violations[0].Type)
}

func TestEvaluate_LowOxygen(t *testing.T) {
	violations := Evaluate(80, 85, 36.6, models.DefaultThresholds())

	require.Len(t, violations, 1)
	assert.Equal(t, models.MetricOxygenLevel, violations[0].Metric)
	assert.Equal(t, models.AlertTypeLow, violations[0].Type)
	assert.Equal(t, 85.0, violations[0].Value)
	assert.Equal(t, 92.0, violations[0].Threshold)
}

func TestEvaluate_HighTemperature(t *testing.T) {
	violations := Evaluate(80, 98, 39.5, models.DefaultThresholds())

	require.Len(t, violations, 1)
	assert.Equal(t, models.MetricBodyTemperature, violations[0].Metric)
	assert.Equal(t, models.AlertTypeHigh, violations[0].Type)
	assert.Equal(t, 39.5, violations[0].Value)
	assert.Equal(t, 38.0, violations[0].Threshold)
}

func TestEvaluate_LowTemperature(t *testing.T) {
	violations := Evaluate(80, 98, 34.0, models.DefaultThresholds())

	require.Len(t, violations, 1)
	assert.Equal(t, models.MetricBodyTemperature, violations[0].Metric)
	assert.Equal(t, models.AlertTypeLow, violations[0].Type)
}

func TestEvaluate_MultipleViolations(t *testing.T) {
	violations := Evaluate(140, 85, 39.5, models.DefaultThresholds())

	require.Len(t, violations, 3)
	metrics := []string{violations[0].Metric, violations[1].Metric, violations[2].Metric}
	assert.Contains(t, metrics, models.MetricHeartRate)
	assert.Contains(t, metrics, models.MetricOxygenLevel)
	assert.Contains(t, metrics, models.MetricBodyTemperature)
}

func TestEvaluate_ExactBoundaryIsNotViolation(t *testing.T) {
	cfg := models.DefaultThresholds()

	// Comparisons are strict: a value equal to the bound is normal.
	assert.Empty(t, Evaluate(120, 98, 36.6, cfg))
	assert.Empty(t, Evaluate(50, 98, 36.6, cfg))
	assert.Empty(t, Evaluate(80, 92, 36.6, cfg))
	assert.Empty(t, Evaluate(80, 98, 38.0, cfg))
	assert.Empty(t, Evaluate(80, 98, 35.5, cfg))
}

func TestEvaluate_CustomThresholds(t *testing.T) {
	cfg := models.ThresholdConfig{
		HeartRateHigh:       100,
		HeartRateLow:        60,
		OxygenLevelLow:      95,
		BodyTemperatureHigh: 37.5,
		BodyTemperatureLow:  36.0,
	}

	violations := Evaluate(110, 98, 36.6, cfg)
	require.Len(t, violations, 1)
	assert.Equal(t, 100.0, violations[0].Threshold)
}
