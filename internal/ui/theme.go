package ui

import (
	"github.com/charmbracelet/lipgloss"

	"espoir/internal/models"
)

// styles bundles the lipgloss styles for one theme mode.
type styles struct {
	title  lipgloss.Style
	status lipgloss.Style
	errMsg lipgloss.Style
	detail lipgloss.Style
}

func newStyles(mode models.ThemeMode) styles {
	accent := lipgloss.Color("63")
	text := lipgloss.Color("235")
	if mode == models.ThemeDark {
		accent = lipgloss.Color("111")
		text = lipgloss.Color("252")
	}

	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1),
		status: lipgloss.NewStyle().
			Foreground(text).
			Faint(true),
		errMsg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")),
		detail: lipgloss.NewStyle().
			Foreground(text).
			Padding(1, 2),
	}
}
