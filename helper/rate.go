package helper

import (
	"fmt"

	"ground_manager/model"

	"gorm.io/gorm"
)

// LoadRateConfig returns the singleton rate settings row.
func LoadRateConfig(db *gorm.DB) (model.GroundSettings, error) {
	var settings model.GroundSettings
	if err := db.Order("id").First(&settings).Error; err != nil {
		return settings, &StorageError{err}
	}
	return settings, nil
}

// IsNightHour checks hour against the configured night window, which may wrap
// past midnight (e.g. 17:00-07:00).
func IsNightHour(cfg model.GroundSettings, hour int) bool {
	if cfg.NightStartHour == cfg.NightEndHour {
		return false
	}
	if cfg.NightStartHour < cfg.NightEndHour {
		return hour >= cfg.NightStartHour && hour < cfg.NightEndHour
	}
	return hour >= cfg.NightStartHour || hour < cfg.NightEndHour
}

// RateFor maps an hour of day to its hourly rate and night flag.
func RateFor(cfg model.GroundSettings, hour int) (float64, bool, error) {
	if hour < 0 || hour > 23 {
		return 0, false, &ValidationError{Reason: fmt.Sprintf("hour %d out of range 0-23", hour)}
	}
	if IsNightHour(cfg, hour) {
		return cfg.NightRate, true, nil
	}
	return cfg.DayRate, false, nil
}
