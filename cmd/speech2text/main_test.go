package main

import (
	"testing"

	"github.com/oneoblomov/speech2text/internal/config"
	"github.com/oneoblomov/speech2text/internal/state"
)

func TestModelFilePath(t *testing.T) {
	cfg := config.DefaultConfig()
	if got := modelFilePath(cfg); got != "current_model.txt" {
		t.Errorf("modelFilePath = %q, want %q", got, "current_model.txt")
	}

	cfg.State.Dir = "/var/lib/speech2text"
	if got := modelFilePath(cfg); got != "/var/lib/speech2text/current_model.txt" {
		t.Errorf("modelFilePath = %q", got)
	}

	cfg.State.Backend = "redis"
	if got := modelFilePath(cfg); got != "" {
		t.Errorf("modelFilePath = %q, want empty for the redis backend", got)
	}
}

func TestNewSink(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.State.Backend = "none"
		sink, closeSink, err := newSink(cfg)
		if err != nil {
			t.Fatal(err)
		}
		defer closeSink()
		if _, ok := sink.(*state.MemorySink); !ok {
			t.Errorf("sink = %T, want *state.MemorySink", sink)
		}
	})

	t.Run("files", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.State.Dir = t.TempDir()
		sink, closeSink, err := newSink(cfg)
		if err != nil {
			t.Fatal(err)
		}
		defer closeSink()
		if _, ok := sink.(*state.FileSink); !ok {
			t.Errorf("sink = %T, want *state.FileSink", sink)
		}
	})

	t.Run("malformed redis url", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.State.Backend = "redis"
		cfg.State.RedisURL = "not-a-url"
		if _, _, err := newSink(cfg); err == nil {
			t.Error("expected error for malformed redis url")
		}
	})
}

func TestRecordFlags(t *testing.T) {
	for _, name := range []string{"source", "output-dir"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("root command missing --%s", name)
		}
	}
}
