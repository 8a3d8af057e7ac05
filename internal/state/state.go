// Package state publishes the externally observable session state: the
// recognized transcript, the current loudness level and the active model
// path. Sinks overwrite whole slots, so readers only ever see complete
// values.
package state

import "context"

// Sink persists the three observable slots. Every setter replaces the
// slot's previous value.
type Sink interface {
	SetText(ctx context.Context, text string) error
	SetLevel(ctx context.Context, level int) error
	SetModelPath(ctx context.Context, path string) error
}
