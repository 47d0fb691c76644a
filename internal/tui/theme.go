package tui

import (
	"sort"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name string
	// Surface is the color the progress gradient is blended over.
	Surface     timer.RGB
	WorkAccent  lipgloss.Color
	BreakAccent lipgloss.Color
	ResetAccent lipgloss.Color
	Label       lipgloss.Style
	ClockBox    lipgloss.Style
	Button      lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Dim         lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:        "Default",
		Surface:     timer.RGB{R: 0x1a, G: 0x1a, B: 0x1a},
		WorkAccent:  lipgloss.Color(config.WorkAccent),
		BreakAccent: lipgloss.Color(config.BreakAccent),
		ResetAccent: lipgloss.Color(config.ResetAccent),
		Label:       lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		ClockBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Bold(true).Padding(1, 2).Align(lipgloss.Center),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1).Align(lipgloss.Center),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:        "Dracula",
		Surface:     timer.RGB{R: 0x28, G: 0x2a, B: 0x36},
		WorkAccent:  lipgloss.Color("#ff5555"), // Red
		BreakAccent: lipgloss.Color("#50fa7b"), // Green
		ResetAccent: lipgloss.Color("#6272a4"), // Comment
		Label:       lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		ClockBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Bold(true).Padding(1, 2).Align(lipgloss.Center),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f8f8f2")).Bold(true).Padding(0, 1).Align(lipgloss.Center),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f8f8f2")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("#ff79c6")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
	"paper": {
		Name:        "Paper",
		Surface:     timer.RGB{R: 0xfa, G: 0xfa, B: 0xf5},
		WorkAccent:  lipgloss.Color("#c92a2a"),
		BreakAccent: lipgloss.Color("#2b8a3e"),
		ResetAccent: lipgloss.Color(config.ResetAccent),
		Label:       lipgloss.NewStyle().Bold(true).Align(lipgloss.Center),
		ClockBox:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Bold(true).Padding(1, 2).Align(lipgloss.Center),
		Button:      lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true).Padding(0, 1).Align(lipgloss.Center),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	},
}

// ThemeNames returns the theme keys in cycling order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named theme, falling back to default.
func LookupTheme(name string) (string, Theme) {
	if t, ok := Themes[name]; ok {
		return name, t
	}
	return "default", Themes["default"]
}

// NextTheme returns the key following name in ThemeNames.
func NextTheme(name string) string {
	names := ThemeNames()
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Accent is the phase color used for the label, clock and primary button.
func (t Theme) Accent(p models.Phase) lipgloss.Color {
	if p == models.PhaseBreak {
		return t.BreakAccent
	}
	return t.WorkAccent
}
