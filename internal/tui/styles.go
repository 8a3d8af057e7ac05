package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Header style for titles and section headers
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Label style for report field labels
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	// Success style for positive feedback
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Error style for error messages
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Subtle style for hints
	StyleSubtle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)
)

const logoASCII = `
                               _      ____   _                _
 ___  _ __    ___   ___   ___ | |__  |___ \ | |_   ___ __  __| |_
/ __|| '_ \  / _ \ / _ \ / __|| '_ \   __) || __| / _ \\ \/ /| __|
\__ \| |_) ||  __/|  __/| (__ | | | | / __/ | |_ |  __/ >  < | |_
|___/| .__/  \___| \___| \___||_| |_||_____| \__| \___|/_/\_\ \__|
     |_|`

// Logo returns the speech2text ASCII art
func Logo() string {
	return StyleHeader.Render(strings.Trim(logoASCII, "\n"))
}

// RenderSummary formats the end-of-session report.
func RenderSummary(outputFile string, bytes int, duration time.Duration, transcript string) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Session complete"))
	b.WriteString("\n")
	if outputFile != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleLabel.Render("Artifact:"), outputFile)
	}
	fmt.Fprintf(&b, "  %s %s (%d KB)\n", StyleLabel.Render("Captured:"), duration.Round(time.Second), bytes/1024)
	if transcript != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleLabel.Render("Transcript:"), transcript)
	}
	return b.String()
}
