package tui

import (
	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func toggleLabel(running bool) string {
	if running {
		return "Pause"
	}
	return "Start"
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.machine.Snapshot()
	accent := m.theme.Accent(snap.Phase)
	bg := lipgloss.Color(snap.Color.Blend(m.theme.Surface, config.BackgroundAlpha).Hex())

	label := m.theme.Label.Foreground(accent).Render(snap.Phase.Label())
	clockBox := m.theme.ClockBox.
		BorderForeground(accent).
		Foreground(accent).
		Width(config.ClockBoxWidth).
		Render(snap.Clock)

	bar := m.bar
	bar.FullColor = string(accent)
	progressView := bar.ViewAs(snap.Progress)

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Button.Background(accent).Width(config.ButtonWidth).Render(toggleLabel(snap.Running)),
		"  ",
		m.theme.Button.Background(m.theme.ResetAccent).Width(config.ButtonWidth).Render("Reset"),
	)

	body := lipgloss.JoinVertical(lipgloss.Center,
		label,
		"",
		clockBox,
		"",
		progressView,
		"",
		buttons,
		"",
		m.statusView(),
		m.help.View(m.keys),
	)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	panel := lipgloss.NewStyle().Background(bg).Padding(1, 4).Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel,
		lipgloss.WithWhitespaceBackground(bg))
}

func (m Model) statusView() string {
	text := m.status
	if text == "" {
		return m.theme.Dim.Render(" ")
	}
	if m.width > 0 {
		text = ansi.Truncate(text, m.width-8, "…")
	}
	if !m.statusOK {
		return m.theme.Error.Render(text)
	}
	return m.theme.Status.Render(text)
}
