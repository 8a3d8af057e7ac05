package notify

import (
	"fmt"
	"log"
	"os/exec"
)

type Notifier interface {
	SessionStarted(source string)
	ArtifactSaved(path string)
	Error(msg string)
}

// New picks the notifier for the configured type. Disabled or unknown
// types fall back to Nop.
func New(enabled bool, typ string) Notifier {
	if !enabled {
		return Nop{}
	}
	switch typ {
	case "desktop":
		return Desktop{}
	case "log":
		return Log{}
	default:
		return Nop{}
	}
}

type Desktop struct{}

func (Desktop) SessionStarted(source string) {
	send(fmt.Sprintf("Recording %s", source))
}

func (Desktop) ArtifactSaved(path string) {
	send(fmt.Sprintf("Saved %s", path))
}

func (Desktop) Error(msg string) {
	cmd := exec.Command("notify-send", "-a", "Speech2Text", "-u", "critical", msg)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send error notification: %v", err)
	}
}

func send(msg string) {
	cmd := exec.Command("notify-send", "-a", "Speech2Text", msg)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

// Log writes notifications to the process log instead of the desktop.
type Log struct{}

func (Log) SessionStarted(source string) { log.Printf("Notify: recording %s", source) }
func (Log) ArtifactSaved(path string)    { log.Printf("Notify: saved %s", path) }
func (Log) Error(msg string)             { log.Printf("Notify: error: %s", msg) }

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) SessionStarted(source string) {}
func (Nop) ArtifactSaved(path string)    {}
func (Nop) Error(msg string)             {}
