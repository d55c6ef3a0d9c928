package helper

import (
	"testing"

	"ground_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNightHourWrappingWindow(t *testing.T) {
	cfg := model.GroundSettings{NightStartHour: 17, NightEndHour: 7}

	assert.True(t, IsNightHour(cfg, 17))
	assert.True(t, IsNightHour(cfg, 23))
	assert.True(t, IsNightHour(cfg, 0))
	assert.True(t, IsNightHour(cfg, 6))
	assert.False(t, IsNightHour(cfg, 7))
	assert.False(t, IsNightHour(cfg, 12))
	assert.False(t, IsNightHour(cfg, 16))
}

func TestIsNightHourSameDayWindow(t *testing.T) {
	cfg := model.GroundSettings{NightStartHour: 18, NightEndHour: 22}

	assert.False(t, IsNightHour(cfg, 17))
	assert.True(t, IsNightHour(cfg, 18))
	assert.True(t, IsNightHour(cfg, 21))
	assert.False(t, IsNightHour(cfg, 22))
}

func TestIsNightHourEmptyWindow(t *testing.T) {
	cfg := model.GroundSettings{NightStartHour: 9, NightEndHour: 9}
	for h := 0; h < 24; h++ {
		assert.False(t, IsNightHour(cfg, h), "hour %d", h)
	}
}

func TestRateFor(t *testing.T) {
	cfg := model.GroundSettings{DayRate: 1000, NightRate: 1500, NightStartHour: 17, NightEndHour: 7}

	rate, night, err := RateFor(cfg, 10)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, rate)
	assert.False(t, night)

	rate, night, err = RateFor(cfg, 20)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, rate)
	assert.True(t, night)

	rate, night, err = RateFor(cfg, 2)
	require.NoError(t, err)
	assert.Equal(t, 1500.0, rate)
	assert.True(t, night)
}

func TestRateForRejectsOutOfRangeHour(t *testing.T) {
	cfg := model.GroundSettings{DayRate: 1000, NightRate: 1500}

	for _, h := range []int{-1, 24, 99} {
		_, _, err := RateFor(cfg, h)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "hour %d", h)
	}
}

func TestLoadRateConfig(t *testing.T) {
	db := testDB(t)
	cfg, err := LoadRateConfig(db)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, cfg.DayRate)
	assert.Equal(t, 1500.0, cfg.NightRate)
	assert.Equal(t, 30.0, cfg.MinAdvancePercent)
}
