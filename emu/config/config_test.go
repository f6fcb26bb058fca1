package config

import (
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, DefaultClockHz, cfg.ClockHz)
	assert.Equal(t, DefaultRefreshHz, cfg.RefreshHz)
	assert.Equal(t, DefaultScale, cfg.Scale)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.False(t, cfg.Mute)
	assert.Equal(t, time.Second/60, cfg.RefreshPeriod())
}

func TestLoad_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyClock, 1000)
	v.Set(KeySeed, 1234)
	v.Set(KeyMute, true)

	cfg, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, 1000, cfg.ClockHz)
	assert.Equal(t, time.Millisecond, cfg.ClockPeriod())
	assert.Equal(t, int64(1234), cfg.Seed)
	assert.True(t, cfg.Mute)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value int
	}{
		{"zero clock", KeyClock, 0},
		{"negative refresh", KeyRefresh, -60},
		{"clock above 1 MHz", KeyClock, 2000000000},
		{"refresh above 1 kHz", KeyRefresh, 2000000000},
		{"zero scale", KeyScale, 0},
		{"huge scale", KeyScale, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := Load(v)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoad_Limits(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set(KeyClock, maxClockHz)
	v.Set(KeyRefresh, maxRefreshHz)

	cfg, err := Load(v)
	assert.NoError(t, err)
	assert.Equal(t, time.Microsecond, cfg.ClockPeriod())
	assert.Equal(t, time.Millisecond, cfg.RefreshPeriod())
}

func TestCreateLogger(t *testing.T) {
	assert.True(t, CreateLogger(true, false) != nil)
	assert.True(t, CreateLogger(false, true) != nil)
}
