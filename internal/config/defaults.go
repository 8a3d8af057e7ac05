package config

import "time"

// DefaultConfig returns the configuration used when no config file exists.
// It must validate as-is: the tool works without any setup.
func DefaultConfig() *Config {
	return &Config{
		Capture: CaptureConfig{
			SampleRate:     16000,
			Channels:       1,
			Format:         "s16le",
			ChunkSize:      320,
			LatencyMS:      50,
			LevelInterval:  20 * time.Millisecond,
			StatusInterval: 250 * time.Millisecond,
		},
		Recognizer: RecognizerConfig{
			Backend: "vosk",
		},
		State: StateConfig{
			Backend:     "files",
			RedisPrefix: "speech2text",
		},
		Polish: PolishConfig{
			Enabled: false,
			Model:   "gpt-4o-mini",
		},
		Notifications: NotificationsConfig{
			Enabled: false,
			Type:    "desktop",
		},
	}
}
