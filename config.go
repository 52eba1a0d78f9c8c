package filesense

import (
	"fmt"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/rs/zerolog"
)

type Config struct {
	// Prediction mode (best-guess, medium-confidence, high-confidence)
	PredictionMode string `env:"FILESENSE_PREDICTION_MODE,default:high-confidence"`

	// Confidence thresholds, in percent
	MediumConfidencePercent int `env:"FILESENSE_MEDIUM_CONFIDENCE_PERCENT,default:50"`
	HighConfidencePercent   int `env:"FILESENSE_HIGH_CONFIDENCE_PERCENT,default:90"`

	// Bytes read from each end of a file
	BlockSize int `env:"FILESENSE_BLOCK_SIZE,default:4096"`

	// Content shorter than this is classified without the model
	MinFileSize int `env:"FILESENSE_MIN_FILE_SIZE,default:8"`

	// Classify symlink targets instead of reporting the link
	FollowSymlinks bool `env:"FILESENSE_FOLLOW_SYMLINKS,default:false"`

	// Log level for embedders that log to stderr (debug, info, warn, error, disabled)
	LogLevel string `env:"FILESENSE_LOG_LEVEL,default:disabled"`
}

// DefaultConfig returns the built-in configuration without reading the
// environment
func DefaultConfig() Config {
	return Config{
		PredictionMode:          string(HighConfidence),
		MediumConfidencePercent: 50,
		HighConfidencePercent:   90,
		BlockSize:               4096,
		MinFileSize:             8,
		LogLevel:                "disabled",
	}
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the configuration and resolves its thresholds
func (c Config) validate() (thresholds, error) {
	mode, err := ParsePredictionMode(c.PredictionMode)
	if err != nil {
		return thresholds{}, err
	}
	if c.BlockSize <= 0 {
		return thresholds{}, fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidConfig, c.BlockSize)
	}
	if c.MinFileSize < 0 {
		return thresholds{}, fmt.Errorf("%w: min file size must not be negative, got %d", ErrInvalidConfig, c.MinFileSize)
	}
	if _, err := c.Level(); err != nil {
		return thresholds{}, err
	}
	for name, pct := range map[string]int{"medium": c.MediumConfidencePercent, "high": c.HighConfidencePercent} {
		if pct <= 0 || pct > 100 {
			return thresholds{}, fmt.Errorf("%w: %s confidence must be in (0, 100], got %d", ErrInvalidConfig, name, pct)
		}
	}
	return thresholds{
		mode:   mode,
		medium: float32(c.MediumConfidencePercent) / 100,
		high:   float32(c.HighConfidencePercent) / 100,
	}, nil
}

// Level parses LogLevel. An empty level means disabled.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.Disabled, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}
