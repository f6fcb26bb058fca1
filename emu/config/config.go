// Package config handles emulator settings and logger setup.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/viper"
)

// Setting keys, shared by flags, environment variables and the config file.
const (
	KeyClock   = "clock"
	KeyRefresh = "refresh"
	KeyScale   = "scale"
	KeySeed    = "seed"
	KeyMute    = "mute"
	KeyTrace   = "trace"
	KeyDebug   = "debug"
	KeyQuiet   = "quiet"

	// EnvPrefix prefixes environment variables, for example CHYP8_CLOCK.
	EnvPrefix = "CHYP8"
)

const (
	DefaultClockHz   = 700
	DefaultRefreshHz = 60
	DefaultScale     = 10

	maxClockHz   = 1000000
	maxRefreshHz = 1000
	maxScale     = 40
)

// ErrInvalid is returned for settings outside their allowed range.
var ErrInvalid = errors.New("invalid setting")

// Config holds the emulator settings.
type Config struct {
	ClockHz   int   // instructions per second
	RefreshHz int   // display and input rate
	Scale     int   // window pixels per machine pixel
	Seed      int64 // RND seed, 0 picks a time based seed
	Mute      bool
	Trace     bool
	Debug     bool
	Quiet     bool
}

// SetDefaults registers the default values with v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyClock, DefaultClockHz)
	v.SetDefault(KeyRefresh, DefaultRefreshHz)
	v.SetDefault(KeyScale, DefaultScale)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyMute, false)
	v.SetDefault(KeyTrace, false)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyQuiet, false)
}

// Load reads and validates the settings from v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		ClockHz:   v.GetInt(KeyClock),
		RefreshHz: v.GetInt(KeyRefresh),
		Scale:     v.GetInt(KeyScale),
		Seed:      v.GetInt64(KeySeed),
		Mute:      v.GetBool(KeyMute),
		Trace:     v.GetBool(KeyTrace),
		Debug:     v.GetBool(KeyDebug),
		Quiet:     v.GetBool(KeyQuiet),
	}

	if cfg.ClockHz < 1 || cfg.ClockHz > maxClockHz {
		return Config{}, fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalid, KeyClock, maxClockHz, cfg.ClockHz)
	}
	if cfg.RefreshHz < 1 || cfg.RefreshHz > maxRefreshHz {
		return Config{}, fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalid, KeyRefresh, maxRefreshHz, cfg.RefreshHz)
	}
	if cfg.Scale < 1 || cfg.Scale > maxScale {
		return Config{}, fmt.Errorf("%w: %s must be between 1 and %d, got %d", ErrInvalid, KeyScale, maxScale, cfg.Scale)
	}
	return cfg, nil
}

// ClockPeriod returns the time between two instructions.
func (c Config) ClockPeriod() time.Duration {
	return time.Second / time.Duration(c.ClockHz)
}

// RefreshPeriod returns the time between two host frames.
func (c Config) RefreshPeriod() time.Duration {
	return time.Second / time.Duration(c.RefreshHz)
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
