// Package config handles pipeline configuration loading and management.
package config

import "github.com/Faultbox/scenepost/pkg/postprocess"

// Config holds all pipeline settings.
type Config struct {
	Pipeline PipelineConfig `yaml:"pipeline"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// PipelineConfig holds post-processing step options.
type PipelineConfig struct {
	// MergeTolerance overrides the UV transform merge epsilon.
	// Zero keeps the built-in default.
	MergeTolerance float32 `yaml:"merge_tolerance"`
	// ForceBaking disables UV channel sharing; every transformed
	// setup gets its own baked channel.
	ForceBaking bool `yaml:"force_baking"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			MergeTolerance: 0,
			ForceBaking:    false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Properties converts the pipeline section into step properties.
func (c *Config) Properties() postprocess.Properties {
	return postprocess.Properties{
		MergeTolerance: c.Pipeline.MergeTolerance,
		ForceBaking:    c.Pipeline.ForceBaking,
	}
}
