package state

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Default slot file names. Desktop readers of this tool's state already
// watch these paths, so they are part of the external contract.
const (
	DefaultTextFile  = "recognized_text.txt"
	DefaultLevelFile = "audio_level.txt"
	DefaultModelFile = "current_model.txt"
)

// FileSink writes each slot to its own file under dir. Writes replace the
// whole file and end with a newline.
type FileSink struct {
	textPath  string
	levelPath string
	modelPath string
}

// NewFileSink creates dir if needed. Empty file names fall back to the
// defaults.
func NewFileSink(dir, textFile, levelFile, modelFile string) (*FileSink, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	if textFile == "" {
		textFile = DefaultTextFile
	}
	if levelFile == "" {
		levelFile = DefaultLevelFile
	}
	if modelFile == "" {
		modelFile = DefaultModelFile
	}
	return &FileSink{
		textPath:  filepath.Join(dir, textFile),
		levelPath: filepath.Join(dir, levelFile),
		modelPath: filepath.Join(dir, modelFile),
	}, nil
}

func (s *FileSink) SetText(_ context.Context, text string) error {
	return writeSlot(s.textPath, text)
}

func (s *FileSink) SetLevel(_ context.Context, level int) error {
	return writeSlot(s.levelPath, strconv.Itoa(level))
}

func (s *FileSink) SetModelPath(_ context.Context, path string) error {
	return writeSlot(s.modelPath, path)
}

// ModelPath returns the file backing the model slot.
func (s *FileSink) ModelPath() string { return s.modelPath }

func writeSlot(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
