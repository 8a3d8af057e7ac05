// Package llm cleans up finished transcripts with a chat-completion model.
// It runs strictly after a capture session ends; the capture loop never
// waits on it.
package llm

import (
	"context"
	"fmt"
)

// Adapter rewrites a raw transcript into cleaned-up text.
type Adapter interface {
	Process(ctx context.Context, text string) (string, error)
}

type Config struct {
	APIKey string
	Model  string
}

func NewAdapter(cfg Config) (Adapter, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key required")
	}
	return NewOpenAIAdapter(cfg), nil
}
