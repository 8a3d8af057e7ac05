package state

import (
	"context"
	"sync"
)

// MemorySink keeps slot values in memory. It backs the "none" publisher
// mode, where a session runs without touching the filesystem, and doubles
// as the sink for tests.
type MemorySink struct {
	mu    sync.Mutex
	text  string
	level int
	model string
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) SetText(_ context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	return nil
}

func (s *MemorySink) SetLevel(_ context.Context, level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = level
	return nil
}

func (s *MemorySink) SetModelPath(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = path
	return nil
}

func (s *MemorySink) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func (s *MemorySink) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

func (s *MemorySink) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}
