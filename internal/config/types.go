package config

import "time"

type Config struct {
	Capture       CaptureConfig       `toml:"capture"`
	Recognizer    RecognizerConfig    `toml:"recognizer"`
	State         StateConfig         `toml:"state"`
	Output        OutputConfig        `toml:"output"`
	Polish        PolishConfig        `toml:"polish"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type CaptureConfig struct {
	SampleRate     int           `toml:"sample_rate"`
	Channels       int           `toml:"channels"`
	Format         string        `toml:"format"`
	ChunkSize      int           `toml:"chunk_size"` // bytes per read
	LatencyMS      int           `toml:"latency_ms"`
	LevelInterval  time.Duration `toml:"level_interval"`
	StatusInterval time.Duration `toml:"status_interval"`
}

type RecognizerConfig struct {
	Backend   string `toml:"backend"`    // "vosk", "server"
	ModelPath string `toml:"model_path"` // vosk model directory
	ServerURL string `toml:"server_url"` // ws:// endpoint when backend = "server"
}

type StateConfig struct {
	Backend     string `toml:"backend"` // "files", "redis", "none"
	Dir         string `toml:"dir"`     // files backend; empty = working directory
	RedisURL    string `toml:"redis_url"`
	RedisPrefix string `toml:"redis_prefix"`
}

type OutputConfig struct {
	Dir string `toml:"dir"` // WAV artifact directory; empty = working directory
}

// PolishConfig configures the post-session transcript cleanup phase.
type PolishConfig struct {
	Enabled bool   `toml:"enabled"`
	Model   string `toml:"model"`
	APIKey  string `toml:"api_key"`
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Type    string `toml:"type"` // "desktop", "log", "none"
}
