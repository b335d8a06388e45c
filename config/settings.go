package config

import (
	"fmt"

	"github.com/fillkit/fillkit/fill"
	"github.com/fillkit/fillkit/logger"
	"github.com/fillkit/fillkit/merge"
	"github.com/fillkit/fillkit/util"
)

// Settings is the root configuration for an application embedding fillkit.
// Projects extend it by embedding it in their own config structs.
type Settings struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Fill        FillSettings  `yaml:"fill" mapstructure:"fill"`
}

// FillSettings carries the configurable fill pipeline defaults.
type FillSettings struct {
	// Strategy is one of merge, replace, strict, deep. Defaults to merge.
	Strategy string `yaml:"strategy" mapstructure:"strategy"`
	// Flatten controls the flatten stage. Defaults to true.
	Flatten *bool `yaml:"flatten" mapstructure:"flatten"`
	// MaxFileSize is a human-readable size string ("1MB", "512KB").
	// Defaults to 1MB.
	MaxFileSize string `yaml:"max_file_size" mapstructure:"max_file_size"`
	// FieldMap renames flattened source keys to destination keys.
	FieldMap map[string]string `yaml:"field_map" mapstructure:"field_map"`
}

// ApplyDefaults applies default values to the settings.
func (s *Settings) ApplyDefaults() {
	if s.Environment == "" {
		s.Environment = "development"
	}
	if s.Environment == "development" {
		s.Debug = true
	}
	if s.Logging.ServiceName == "" && s.Name != "" {
		s.Logging.ServiceName = s.Name
	}
	s.Logging.ApplyDefaults()
}

// Validate validates the settings.
func (s *Settings) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if _, err := merge.ParseStrategy(s.Fill.Strategy); err != nil {
		return fmt.Errorf("config.fill: %w", err)
	}
	return nil
}

// Options converts the fill section into pipeline options. Callback hooks
// are code, not configuration; the caller attaches them to the result.
func (f *FillSettings) Options() (fill.Options, error) {
	strategy, err := merge.ParseStrategy(f.Strategy)
	if err != nil {
		return fill.Options{}, err
	}
	opts := fill.Options{
		Strategy:    strategy,
		Flatten:     f.Flatten,
		MaxFileSize: util.ParseSize(f.MaxFileSize, fill.DefaultMaxFileSize),
	}
	if len(f.FieldMap) > 0 {
		opts.FieldMap = fill.FieldMap(f.FieldMap)
	}
	opts.ApplyDefaults()
	return opts, nil
}
