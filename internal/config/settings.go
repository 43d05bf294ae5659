package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/alexisbeaulieu97/lumen/internal/reveal"
	"github.com/alexisbeaulieu97/lumen/internal/slider"
)

// EnvPrefix is the environment variable prefix for overrides. Nested keys use a
// double underscore: LUMEN_LOG__LEVEL sets log.level.
const EnvPrefix = "LUMEN_"

// Config is the application configuration, corresponding to ~/.lumen/config.yaml.
type Config struct {
	Catalog   string         `yaml:"catalog" koanf:"catalog"`
	PrefsPath string         `yaml:"prefs_path" koanf:"prefs_path" validate:"required"`
	Log       LogConfig      `yaml:"log" koanf:"log"`
	Slider    SliderConfig   `yaml:"slider" koanf:"slider"`
	Reveal    RevealConfig   `yaml:"reveal" koanf:"reveal"`
	Lightbox  LightboxConfig `yaml:"lightbox" koanf:"lightbox"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level string `yaml:"level" koanf:"level" validate:"oneof=trace debug info warn error"`
	Human bool   `yaml:"human" koanf:"human"`
	File  string `yaml:"file" koanf:"file"`
}

// SliderConfig controls hero auto-advance.
type SliderConfig struct {
	Interval time.Duration `yaml:"interval" koanf:"interval" validate:"min=250ms,max=10m"`
	Autoplay bool          `yaml:"autoplay" koanf:"autoplay"`
}

// RevealConfig controls reveal-on-scroll.
type RevealConfig struct {
	Threshold float64 `yaml:"threshold" koanf:"threshold" validate:"gt=0,lte=1"`
}

// LightboxConfig controls lightbox behaviour when the visible set changes.
type LightboxConfig struct {
	Follow bool `yaml:"follow" koanf:"follow"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		PrefsPath: defaultPath("prefs.json"),
		Log: LogConfig{
			Level: "info",
		},
		Slider: SliderConfig{
			Interval: slider.DefaultInterval,
			Autoplay: true,
		},
		Reveal: RevealConfig{
			Threshold: reveal.DefaultThreshold,
		},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultPath("config.yaml")
}

func defaultPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".lumen", name)
	}
	return filepath.Join(home, ".lumen", name)
}
