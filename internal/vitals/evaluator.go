package vitals

import "vmd/internal/models"

// Evaluate compares one reading against the current thresholds and returns
// every bound it crosses. All five bounds are checked unconditionally, so a
// single reading can produce several violations. Pure function.
func Evaluate(heartRate, oxygenLevel int, bodyTemp float64, cfg models.ThresholdConfig) []models.Violation {
	var violations []models.Violation

	if heartRate > cfg.HeartRateHigh {
		violations = append(violations, models.Violation{
			Metric:    models.MetricHeartRate,
			Type:      models.AlertTypeHigh,
			Value:     float64(heartRate),
			Threshold: float64(cfg.HeartRateHigh),
		})
	}
	if heartRate < cfg.HeartRateLow {
		violations = append(violations, models.Violation{
			Metric:    models.MetricHeartRate,
			Type:      models.AlertTypeLow,
			Value:     float64(heartRate),
			Threshold: float64(cfg.HeartRateLow),
		})
	}
	if oxygenLevel < cfg.OxygenLevelLow {
		violations = append(violations, models.Violation{
			Metric:    models.MetricOxygenLevel,
			Type:      models.AlertTypeLow,
			Value:     float64(oxygenLevel),
			Threshold: float64(cfg.OxygenLevelLow),
		})
	}
	if bodyTemp > cfg.BodyTemperatureHigh {
		violations = append(violations, models.Violation{
			Metric:    models.MetricBodyTemperature,
			Type:      models.AlertTypeHigh,
			Value:     bodyTemp,
			Threshold: cfg.BodyTemperatureHigh,
		})
	}
	if bodyTemp < cfg.BodyTemperatureLow {
		violations = append(violations, models.Violation{
			Metric:    models.MetricBodyTemperature,
			Type:      models.AlertTypeLow,
			Value:     bodyTemp,
			Threshold: cfg.BodyTemperatureLow,
		})
	}

	return violations
}
