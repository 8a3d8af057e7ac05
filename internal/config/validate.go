package config

import (
	"fmt"
	"os"
)

func (c *Config) Validate() error {
	if c.Capture.SampleRate <= 0 {
		return fmt.Errorf("invalid capture.sample_rate: %d", c.Capture.SampleRate)
	}
	if c.Capture.Channels != 1 {
		return fmt.Errorf("invalid capture.channels: %d (mono capture only)", c.Capture.Channels)
	}
	if c.Capture.Format == "" {
		return fmt.Errorf("invalid capture.format: empty")
	}
	if c.Capture.ChunkSize <= 0 || c.Capture.ChunkSize%2 != 0 {
		return fmt.Errorf("invalid capture.chunk_size: %d (must be a positive even byte count)", c.Capture.ChunkSize)
	}
	if c.Capture.LatencyMS <= 0 {
		return fmt.Errorf("invalid capture.latency_ms: %d", c.Capture.LatencyMS)
	}
	if c.Capture.LevelInterval < 0 {
		return fmt.Errorf("invalid capture.level_interval: %v", c.Capture.LevelInterval)
	}
	if c.Capture.StatusInterval < 0 {
		return fmt.Errorf("invalid capture.status_interval: %v", c.Capture.StatusInterval)
	}

	switch c.Recognizer.Backend {
	case "vosk":
	case "server":
		if c.Recognizer.ServerURL == "" {
			return fmt.Errorf("recognizer.server_url required when recognizer.backend = \"server\"")
		}
	default:
		return fmt.Errorf("invalid recognizer.backend: %s (must be vosk or server)", c.Recognizer.Backend)
	}

	switch c.State.Backend {
	case "files", "none":
	case "redis":
		if c.State.RedisURL == "" {
			return fmt.Errorf("state.redis_url required when state.backend = \"redis\"")
		}
	default:
		return fmt.Errorf("invalid state.backend: %s (must be files, redis, or none)", c.State.Backend)
	}

	if c.Polish.Enabled {
		if c.Polish.Model == "" {
			return fmt.Errorf("polish.model required when polish.enabled = true")
		}
		if c.PolishAPIKey() == "" {
			return fmt.Errorf("OpenAI API key required for polish: not found in config (polish.api_key) or environment variable (OPENAI_API_KEY)")
		}
	}

	validTypes := map[string]bool{"desktop": true, "log": true, "none": true}
	if !validTypes[c.Notifications.Type] {
		return fmt.Errorf("invalid notifications.type: %s (must be desktop, log, or none)", c.Notifications.Type)
	}

	return nil
}

// PolishAPIKey resolves the cleanup-phase API key from the config file or
// the environment.
func (c *Config) PolishAPIKey() string {
	if c.Polish.APIKey != "" {
		return c.Polish.APIKey
	}
	return os.Getenv("OPENAI_API_KEY")
}
