package config

import (
	"github.com/oneoblomov/speech2text/internal/capture"
	"github.com/oneoblomov/speech2text/internal/source"
)

func (c *Config) ToSourceConfig() source.Config {
	return source.Config{
		SampleRate: c.Capture.SampleRate,
		Channels:   c.Capture.Channels,
		Format:     c.Capture.Format,
		LatencyMS:  c.Capture.LatencyMS,
	}
}

func (c *Config) ToCaptureOptions() capture.Options {
	return capture.Options{
		ChunkSize:      c.Capture.ChunkSize,
		SampleRate:     c.Capture.SampleRate,
		LevelInterval:  c.Capture.LevelInterval,
		StatusInterval: c.Capture.StatusInterval,
		OutputDir:      c.Output.Dir,
	}
}

// IsPolishEnabled returns true if transcript cleanup is enabled and configured.
func (c *Config) IsPolishEnabled() bool {
	return c.Polish.Enabled && c.Polish.Model != ""
}
