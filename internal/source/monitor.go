package source

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultMonitorSource resolves the monitor of the current default output
// sink, the device system-audio capture records from. An empty answer from
// pactl is an error: capturing would silently fall back to the microphone.
func DefaultMonitorSource(ctx context.Context) (string, error) {
	// Short timeout to avoid hangs on misconfigured systems.
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "pactl", "get-default-sink").Output()
	if err != nil {
		return "", fmt.Errorf("query default sink: %w", err)
	}
	sink := firstLine(string(out))
	if sink == "" {
		return "", fmt.Errorf("no default sink reported")
	}
	return monitorName(sink), nil
}

func monitorName(sink string) string {
	return sink + ".monitor"
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
