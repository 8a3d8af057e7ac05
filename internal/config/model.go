package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ModelMarker is the file every usable vosk model directory contains.
	ModelMarker = "conf/model.conf"

	DefaultModelName = "vosk-model-small-en-us-0.15"
)

// DefaultModelDir is the built-in fallback model location.
func DefaultModelDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "speech2text", "models", DefaultModelName), nil
}

// ValidModelDir reports whether dir holds a usable model, checked by the
// presence of the conf/model.conf marker.
func ValidModelDir(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(ModelMarker)))
	return err == nil && info.Mode().IsRegular()
}

// ReadModelFile returns the model path persisted by a previous `model set`,
// or "" when the file is missing or blank.
func ReadModelFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line)
}

// ResolveModelPath picks the model directory for a session: the path in the
// model state file when it is valid, then the configured model_path, then
// the built-in default. The bool is false when no candidate is usable.
func ResolveModelPath(modelFile, configured string) (string, bool) {
	if p := ReadModelFile(modelFile); ValidModelDir(p) {
		return p, true
	}
	if ValidModelDir(configured) {
		return configured, true
	}
	if def, err := DefaultModelDir(); err == nil && ValidModelDir(def) {
		return def, true
	}
	return "", false
}
