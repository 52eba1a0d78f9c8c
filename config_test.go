package filesense

import (
	"errors"
	"os"
	"testing"

	"github.com/rs/zerolog"
)

func TestGetConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    Config
	}{
		{
			name:    "default values",
			envVars: map[string]string{},
			want:    DefaultConfig(),
		},
		{
			name: "prediction settings",
			envVars: map[string]string{
				"BEAVER_FILESENSE_PREDICTION_MODE":           "medium-confidence",
				"BEAVER_FILESENSE_MEDIUM_CONFIDENCE_PERCENT": "60",
				"BEAVER_FILESENSE_HIGH_CONFIDENCE_PERCENT":   "95",
			},
			want: Config{
				PredictionMode:          "medium-confidence",
				MediumConfidencePercent: 60,
				HighConfidencePercent:   95,
				BlockSize:               4096,
				MinFileSize:             8,
				LogLevel:                "disabled",
			},
		},
		{
			name: "reading settings",
			envVars: map[string]string{
				"BEAVER_FILESENSE_BLOCK_SIZE":      "1024",
				"BEAVER_FILESENSE_MIN_FILE_SIZE":   "16",
				"BEAVER_FILESENSE_FOLLOW_SYMLINKS": "true",
			},
			want: Config{
				PredictionMode:          "high-confidence",
				MediumConfidencePercent: 50,
				HighConfidencePercent:   90,
				BlockSize:               1024,
				MinFileSize:             16,
				FollowSymlinks:          true,
				LogLevel:                "disabled",
			},
		},
		{
			name: "log level",
			envVars: map[string]string{
				"BEAVER_FILESENSE_LOG_LEVEL": "warn",
			},
			want: Config{
				PredictionMode:          "high-confidence",
				MediumConfidencePercent: 50,
				HighConfidencePercent:   90,
				BlockSize:               4096,
				MinFileSize:             8,
				LogLevel:                "warn",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Set environment variables
			for k, v := range tt.envVars {
				k := k // capture for closure
				os.Setenv(k, v)
				t.Cleanup(func() { os.Unsetenv(k) })
			}

			cfg, err := GetConfig()
			if err != nil {
				t.Fatalf("GetConfig() error = %v", err)
			}

			if *cfg != tt.want {
				t.Errorf("GetConfig() = %+v, want %+v", *cfg, tt.want)
			}

			// A loaded config is always usable
			if _, err := NewSession(WithConfig(*cfg)); err != nil {
				t.Errorf("NewSession(WithConfig()) error = %v", err)
			}
		})
	}
}

func TestConfigLevel(t *testing.T) {
	tests := []struct {
		level   string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.Disabled, false},
		{"disabled", zerolog.Disabled, false},
		{"debug", zerolog.DebugLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.Disabled, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.LogLevel = tt.level
			got, err := cfg.Level()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Level() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Level() error = %v, want ErrInvalidConfig", err)
			}
			if got != tt.want {
				t.Errorf("Level() = %v, want %v", got, tt.want)
			}
		})
	}
}
