package tui

import (
	"os"

	"github.com/muesli/termenv"
)

var output = termenv.NewOutput(os.Stdout)

// HideCursor hides the terminal cursor while the status line redraws in
// place. Pair with ShowCursor.
func HideCursor() { output.HideCursor() }

// ShowCursor restores the terminal cursor.
func ShowCursor() { output.ShowCursor() }
