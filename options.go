package filesense

import (
	"github.com/rs/zerolog"
)

// Option represents a session option
type Option func(*Options)

// Options contains all possible options for a session
type Options struct {
	// Config holds the tunables, defaults to DefaultConfig()
	Config Config

	// Model is the content model, defaults to NewDefaultModel()
	Model Model

	// Logger receives debug events for every classification
	Logger zerolog.Logger
}

// WithConfig replaces the whole configuration
func WithConfig(cfg Config) Option {
	return func(o *Options) {
		o.Config = cfg
	}
}

// WithPredictionMode sets the prediction mode
func WithPredictionMode(mode PredictionMode) Option {
	return func(o *Options) {
		o.Config.PredictionMode = string(mode)
	}
}

// WithThresholds sets the medium and high confidence thresholds in percent
func WithThresholds(mediumPercent, highPercent int) Option {
	return func(o *Options) {
		o.Config.MediumConfidencePercent = mediumPercent
		o.Config.HighConfidencePercent = highPercent
	}
}

// WithFollowSymlinks classifies symlink targets instead of the links
func WithFollowSymlinks(follow bool) Option {
	return func(o *Options) {
		o.Config.FollowSymlinks = follow
	}
}

// WithBlockSize sets how many bytes are read from each end of a file
func WithBlockSize(size int) Option {
	return func(o *Options) {
		o.Config.BlockSize = size
	}
}

// WithModel replaces the content model
func WithModel(model Model) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithLogger sets the session logger
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func processOptions(options ...Option) *Options {
	opts := &Options{
		Config: DefaultConfig(),
		Logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(opts)
	}
	if opts.Model == nil {
		opts.Model = NewDefaultModel()
	}
	return opts
}
