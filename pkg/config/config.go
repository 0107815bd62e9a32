package config

import (
	"fmt"
	"log/slog"
	"time"
)

// Config is the root configuration, one struct per TOML section.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Deck      DeckConfig      `toml:"deck"`
	Countdown CountdownConfig `toml:"countdown"`
	Weather   WeatherConfig   `toml:"weather"`
	Theme     ThemeConfig     `toml:"theme"`
}

// GeneralConfig covers logging and cache paths.
type GeneralConfig struct {
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"` // debug|info|warn|error
	CacheDir string `toml:"cache_dir"`
}

// DeckConfig covers view selection and refresh cadences.
type DeckConfig struct {
	// StartView is the card shown on launch: home|alarm|stopwatch|timer|weather.
	StartView string `toml:"start_view"`

	// SecondTick is the refresh cadence for the home, alarm and timer
	// cards. Default 1s.
	SecondTick Duration `toml:"second_tick"`

	// StopwatchTick is the stopwatch sampling cadence. Default 10ms for
	// roughly 100 samples per second.
	StopwatchTick Duration `toml:"stopwatch_tick"`
}

// CountdownConfig covers the timer card's quick-set presets.
type CountdownConfig struct {
	Presets []Duration `toml:"presets"`
}

// WeatherConfig covers the weather card and its collaborators.
type WeatherConfig struct {
	Enabled bool   `toml:"enabled"`
	APIKey  string `toml:"api_key"`

	// Latitude/Longitude pin the position; both zero means locate by IP.
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`

	// City overrides the displayed city label when the position is pinned.
	City string `toml:"city"`

	// CacheTTL is how long a cached snapshot short-circuits the network.
	CacheTTL Duration `toml:"cache_ttl"`
}

// Pinned reports whether the config supplies coordinates directly.
func (w WeatherConfig) Pinned() bool {
	return w.Latitude != 0 || w.Longitude != 0
}

// ThemeConfig selects the color palette.
type ThemeConfig struct {
	Name string `toml:"name"`
}

// PresetDurations returns the countdown presets as plain durations.
func (c CountdownConfig) PresetDurations() []time.Duration {
	out := make([]time.Duration, len(c.Presets))
	for i, p := range c.Presets {
		out[i] = p.Duration
	}
	return out
}

// Validate checks the configuration for values that would misbehave at
// runtime rather than failing loudly.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.General.LogLevel)
	}
	if c.Deck.SecondTick.Duration <= 0 {
		return fmt.Errorf("deck.second_tick must be positive, got %v", c.Deck.SecondTick.Duration)
	}
	if c.Deck.StopwatchTick.Duration <= 0 {
		return fmt.Errorf("deck.stopwatch_tick must be positive, got %v", c.Deck.StopwatchTick.Duration)
	}
	switch c.Deck.StartView {
	case "home", "alarm", "stopwatch", "timer", "weather":
	default:
		return fmt.Errorf("unknown deck.start_view %q", c.Deck.StartView)
	}
	if len(c.Countdown.Presets) == 0 {
		return fmt.Errorf("countdown.presets must not be empty")
	}
	for _, p := range c.Countdown.Presets {
		if p.Duration <= 0 {
			return fmt.Errorf("countdown preset %v must be positive", p.Duration)
		}
	}
	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		return fmt.Errorf("weather.latitude %v out of range", c.Weather.Latitude)
	}
	if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
		return fmt.Errorf("weather.longitude %v out of range", c.Weather.Longitude)
	}
	return nil
}

// SlogLevel maps the configured log level to its slog value. Unknown
// strings were already rejected by Validate; they map to Info here.
func (g GeneralConfig) SlogLevel() slog.Level {
	switch g.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
