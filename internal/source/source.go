// Package source opens the PCM stream behind a capture session: the
// default microphone, or the monitor of the default output sink.
package source

import (
	"fmt"
	"strings"
)

// Kind selects what gets captured.
type Kind string

const (
	Microphone  Kind = "microphone"
	SystemAudio Kind = "system"
)

// ParseKind maps user input (menu digits, flag values) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "mic", "microphone":
		return Microphone, nil
	case "2", "system", "system-audio", "monitor":
		return SystemAudio, nil
	default:
		return "", fmt.Errorf("unknown audio source %q (use 1/microphone or 2/system)", s)
	}
}

// FilePrefix names artifacts recorded from this source.
func (k Kind) FilePrefix() string {
	if k == SystemAudio {
		return "system_audio"
	}
	return "microphone"
}

func (k Kind) String() string { return string(k) }

// Config describes the stream parec is asked for.
type Config struct {
	SampleRate int
	Channels   int
	Format     string
	LatencyMS  int
	Device     string // monitor source name; empty records the default input
}

func DefaultConfig() Config {
	return Config{
		SampleRate: 16000,
		Channels:   1,
		Format:     "s16le",
		LatencyMS:  50,
	}
}
