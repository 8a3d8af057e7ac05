package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/oneoblomov/speech2text/internal/source"
)

// SelectSource asks which stream to record. The numbered labels keep the
// muscle memory of the plain 1/2 prompt.
func SelectSource() (source.Kind, error) {
	selected := source.Microphone
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[source.Kind]().
				Title("Audio Source").
				Description("What should be recorded?").
				Options(sourceOptions()...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func sourceOptions() []huh.Option[source.Kind] {
	return []huh.Option[source.Kind]{
		huh.NewOption("1) Microphone", source.Microphone),
		huh.NewOption("2) System audio", source.SystemAudio),
	}
}

func getTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Focused.Base = lipgloss.NewStyle().BorderForeground(ColorPrimary)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(ColorSecondary)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(ColorText)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(ColorMuted)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(ColorSubtle)

	return t
}
