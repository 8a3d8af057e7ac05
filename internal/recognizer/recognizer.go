// Package recognizer defines the streaming speech recognition boundary and
// the engine adapters behind it.
package recognizer

import (
	"context"
	"fmt"
	"log"
)

// Session is one streaming recognition pass over a PCM stream. Hot-path
// methods never return errors: adapter-internal failures surface as empty
// payloads so the capture loop keeps running.
type Session interface {
	// Accept feeds one chunk to the engine. True means a segment was
	// finalized and Result carries its payload.
	Accept(chunk []byte) bool
	// Partial returns the in-progress hypothesis payload.
	Partial() string
	// Result returns the payload of the segment finalized by the last
	// Accept.
	Result() string
	// Final flushes the engine at end of stream and returns the closing
	// segment's payload.
	Final() string
	Close() error
}

// Engine owns the model or connection that sessions run against.
type Engine interface {
	NewSession(ctx context.Context, sampleRate int) (Session, error)
	Close() error
}

// OpenFunc constructs an engine candidate.
type OpenFunc func() (Engine, error)

// Handle pairs a session with the engine it runs on so both get released
// together.
type Handle struct {
	Session Session
	engine  Engine
}

// Close releases the session first, then the engine.
func (h *Handle) Close() error {
	err := h.Session.Close()
	if cerr := h.engine.Close(); err == nil {
		err = cerr
	}
	return err
}

// OpenSession tries engine candidates in order and opens a session on the
// first that works. A candidate failing to construct, or failing to hand
// out a session, is logged and the next one is tried. When every candidate
// fails the caller is expected to carry on without recognition.
func OpenSession(ctx context.Context, sampleRate int, opens ...OpenFunc) (*Handle, error) {
	var lastErr error
	for _, open := range opens {
		eng, err := open()
		if err != nil {
			log.Printf("Recognizer: engine unavailable: %v", err)
			lastErr = err
			continue
		}
		sess, err := eng.NewSession(ctx, sampleRate)
		if err != nil {
			log.Printf("Recognizer: session setup failed: %v", err)
			if cerr := eng.Close(); cerr != nil {
				log.Printf("Recognizer: engine close: %v", cerr)
			}
			lastErr = err
			continue
		}
		return &Handle{Session: sess, engine: eng}, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no engines configured")
	}
	return nil, fmt.Errorf("open recognizer: %w", lastErr)
}
