package llm

import (
	"strings"
	"testing"
)

func TestSystemPrompt(t *testing.T) {
	prompt := SystemPrompt()
	for _, expected := range []string{
		"Remove stutters",
		"Add proper punctuation",
		"Remove filler words",
		"Preserve the original meaning",
		"Output ONLY the cleaned text",
	} {
		if !strings.Contains(prompt, expected) {
			t.Errorf("expected prompt to contain %q, got: %s", expected, prompt)
		}
	}
}

func TestNewAdapter(t *testing.T) {
	adapter, err := NewAdapter(Config{APIKey: "sk-test-key", Model: "gpt-4o-mini"})
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}
	if _, ok := adapter.(*OpenAIAdapter); !ok {
		t.Error("expected OpenAIAdapter type")
	}

	if _, err := NewAdapter(Config{Model: "gpt-4o-mini"}); err == nil {
		t.Error("expected error for missing API key")
	}
}
