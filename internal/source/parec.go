package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strconv"
)

// Capture is a live parec stream. Read hands out raw PCM bytes as the
// child produces them; Close kills and reaps the child.
type Capture struct {
	cmd    *exec.Cmd
	stdout io.ReadCloser
}

// Open spawns parec and returns once the stream is started. An open
// failure is fatal to the session, before any capture side effects.
func Open(ctx context.Context, cfg Config) (*Capture, error) {
	args := buildParecArgs(cfg)
	cmd := exec.CommandContext(ctx, "parec", args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start parec: %w", err)
	}

	// Surface capture diagnostics in the log.
	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			log.Printf("Source stderr: %s", scanner.Text())
		}
	}()

	return &Capture{cmd: cmd, stdout: stdout}, nil
}

func (c *Capture) Read(p []byte) (int, error) {
	return c.stdout.Read(p)
}

// Close terminates parec if it is still running and reaps it. The kill and
// wait errors of an already-finished child carry no information.
func (c *Capture) Close() error {
	if c.cmd.Process != nil {
		_ = c.cmd.Process.Kill()
	}
	_ = c.cmd.Wait()
	return nil
}

// buildParecArgs uses the single-token --key=value form parec documents.
func buildParecArgs(cfg Config) []string {
	args := []string{
		"--format=" + cfg.Format,
		"--rate=" + strconv.Itoa(cfg.SampleRate),
		"--channels=" + strconv.Itoa(cfg.Channels),
		"--latency-msec=" + strconv.Itoa(cfg.LatencyMS),
	}
	if cfg.Device != "" {
		args = append(args, "--device="+cfg.Device)
	}
	return args
}

// CheckAvailable reports whether parec can be spawned at all.
func CheckAvailable() error {
	if _, err := exec.LookPath("parec"); err != nil {
		return fmt.Errorf("parec not found: %w (install pulseaudio-utils)", err)
	}
	return nil
}
