package models

// ThresholdConfig holds the five alert bounds. Logically a singleton,
// replaced wholesale on update.
type ThresholdConfig struct {
	HeartRateHigh       int     `json:"heart_rate_high" validate:"int|min:1"`
	HeartRateLow        int     `json:"heart_rate_low" validate:"int|min:0"`
	OxygenLevelLow      int     `json:"oxygen_level_low" validate:"int|min:0|max:100"`
	BodyTemperatureHigh float64 `json:"body_temperature_high" validate:"min:30.0|max:45.0"`
	BodyTemperatureLow  float64 `json:"body_temperature_low" validate:"min:30.0|max:45.0"`
}

func DefaultThresholds() ThresholdConfig {
	return ThresholdConfig{
		HeartRateHigh:       120,
		HeartRateLow:        50,
		OxygenLevelLow:      92,
		BodyTemperatureHigh: 38.0,
		BodyTemperatureLow:  35.5,
	}
}
