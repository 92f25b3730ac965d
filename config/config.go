// Package config loads viewer settings from the environment
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/haliteviz/logger"
	"github.com/lixenwraith/haliteviz/parameter"
)

// Config controls playback speed, the tick source and ambient services
type Config struct {
	StepSize      float64       `env:"HALITEVIZ_STEP_SIZE"      envDefault:"0.1"`
	PlaySpeed     float64       `env:"HALITEVIZ_PLAY_SPEED"     envDefault:"0.5"`
	ScrubSpeed    float64       `env:"HALITEVIZ_SCRUB_SPEED"    envDefault:"0.25"`
	FrameInterval time.Duration `env:"HALITEVIZ_FRAME_INTERVAL" envDefault:"16ms"`
	MaxTick       float64       `env:"HALITEVIZ_MAX_TICK"       envDefault:"6"`
	Audio         bool          `env:"HALITEVIZ_AUDIO"          envDefault:"true"`
	Volume        float64       `env:"HALITEVIZ_VOLUME"         envDefault:"0.5"`
	Autoplay      bool          `env:"HALITEVIZ_AUTOPLAY"       envDefault:"true"`
	LogLevel      string        `env:"HALITEVIZ_LOG_LEVEL"      envDefault:"info"`
	LogFormat     string        `env:"HALITEVIZ_LOG_FORMAT"     envDefault:"text"`
	LogFile       string        `env:"HALITEVIZ_LOG_FILE"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		StepSize:      parameter.StepSize,
		PlaySpeed:     parameter.PlaySpeed,
		ScrubSpeed:    parameter.ScrubSpeed,
		FrameInterval: parameter.FrameUpdateInterval,
		MaxTick:       parameter.MaxTickDelta,
		Audio:         true,
		Volume:        parameter.AudioVolume,
		Autoplay:      true,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load parses the environment on top of the defaults
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the playback engine cannot run with
func (c Config) Validate() error {
	if c.StepSize <= 0 {
		return fmt.Errorf("step size must be positive, got %v", c.StepSize)
	}
	if c.PlaySpeed <= 0 {
		return fmt.Errorf("play speed must be positive, got %v", c.PlaySpeed)
	}
	if c.ScrubSpeed <= 0 {
		return fmt.Errorf("scrub speed must be positive, got %v", c.ScrubSpeed)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.FrameInterval)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be within [0, 1], got %v", c.Volume)
	}
	if c.MaxTick <= 0 {
		return fmt.Errorf("max tick must be positive, got %v", c.MaxTick)
	}
	return nil
}

// LoggerOptions maps the log settings onto logger.Options
func (c Config) LoggerOptions() logger.Options {
	return logger.Options{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile}
}
