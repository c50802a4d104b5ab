// Package config handles configuration loading for tm. Everything has
// a documented default; an optional user config file can override the
// tone, beep, and window settings. No environment variables are read.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for tm.
type Config struct {
	Tone   ToneConfig   `mapstructure:"tone"`
	Beep   BeepConfig   `mapstructure:"beep"`
	UI     UIConfig     `mapstructure:"ui"`
	Window WindowConfig `mapstructure:"window"`
}

// ToneConfig describes the alert tone waveform.
type ToneConfig struct {
	// Frequency of the sine tone in Hz. Default 2000.
	Frequency float64 `mapstructure:"frequency"`
	// SampleRate in samples per second. Default 44100.
	SampleRate int `mapstructure:"sample_rate"`
	// Volume scales the tone, 0 to 1. Default 0.8.
	Volume float64 `mapstructure:"volume"`
	// Duration of a single beep. Default 300ms.
	Duration time.Duration `mapstructure:"duration"`
}

// BeepConfig describes the repeating beep loop.
type BeepConfig struct {
	// Interval is the pause between beeps. Default 500ms.
	Interval time.Duration `mapstructure:"interval"`
	// StopTimeout bounds how long the UI waits for the beep worker to
	// honor the stop signal. Default 100ms.
	StopTimeout time.Duration `mapstructure:"stop_timeout"`
}

// UIConfig describes the update loop and alert behavior.
type UIConfig struct {
	// Tick is the countdown refresh period. Default 100ms.
	Tick time.Duration `mapstructure:"tick"`
	// AckDelay is how long acknowledgement gestures are ignored after
	// the alert appears. Default 500ms.
	AckDelay time.Duration `mapstructure:"ack_delay"`
}

// WindowConfig describes where the content sits on screen.
type WindowConfig struct {
	// Position is one of: center, top-left, top-right, bottom-left,
	// bottom-right. Default center.
	Position string `mapstructure:"position"`
	// Margin is the cell gap kept from the screen edge for corner
	// positions. Default 2.
	Margin int `mapstructure:"margin"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	v := viper.New()
	setDefaults(v)
	// Unmarshal of pure defaults cannot fail.
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load loads configuration from the user config file, if present,
// layered over the built-in defaults.
//
// The user config lives at ~/.config/tm/config.yaml (or under
// $XDG_CONFIG_HOME when set). A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the tone generator or UI loop cannot work
// with.
func (c *Config) Validate() error {
	if c.Tone.Frequency <= 0 {
		return fmt.Errorf("tone.frequency must be positive, got %v", c.Tone.Frequency)
	}
	if c.Tone.SampleRate <= 0 {
		return fmt.Errorf("tone.sample_rate must be positive, got %d", c.Tone.SampleRate)
	}
	if c.Tone.Volume < 0 || c.Tone.Volume > 1 {
		return fmt.Errorf("tone.volume must be between 0 and 1, got %v", c.Tone.Volume)
	}
	if c.Tone.Duration <= 0 {
		return fmt.Errorf("tone.duration must be positive, got %v", c.Tone.Duration)
	}
	if c.Beep.Interval <= 0 {
		return fmt.Errorf("beep.interval must be positive, got %v", c.Beep.Interval)
	}
	if c.Beep.StopTimeout <= 0 {
		return fmt.Errorf("beep.stop_timeout must be positive, got %v", c.Beep.StopTimeout)
	}
	if c.UI.Tick <= 0 {
		return fmt.Errorf("ui.tick must be positive, got %v", c.UI.Tick)
	}
	if c.UI.AckDelay < 0 {
		return fmt.Errorf("ui.ack_delay must not be negative, got %v", c.UI.AckDelay)
	}
	switch c.Window.Position {
	case "center", "top-left", "top-right", "bottom-left", "bottom-right":
	default:
		return fmt.Errorf("window.position must be center or a corner, got %q", c.Window.Position)
	}
	if c.Window.Margin < 0 {
		return fmt.Errorf("window.margin must not be negative, got %d", c.Window.Margin)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tone.frequency", 2000.0)
	v.SetDefault("tone.sample_rate", 44100)
	v.SetDefault("tone.volume", 0.8)
	v.SetDefault("tone.duration", "300ms")
	v.SetDefault("beep.interval", "500ms")
	v.SetDefault("beep.stop_timeout", "100ms")
	v.SetDefault("ui.tick", "100ms")
	v.SetDefault("ui.ack_delay", "500ms")
	v.SetDefault("window.position", "center")
	v.SetDefault("window.margin", 2)
}

// getUserConfigDir returns the directory holding the user config file,
// honoring XDG_CONFIG_HOME.
func getUserConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tm")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "tm")
}
