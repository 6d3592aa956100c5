package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/akyairhashvil/seodesk/internal/formassist"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Header    lipgloss.Style
	Label     lipgloss.Style
	Input     lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Status    lipgloss.Style
	// Indicators maps formassist colour labels to terminal colours.
	Indicators map[string]lipgloss.Color
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Indicators: map[string]lipgloss.Color{
			formassist.Green:  lipgloss.Color("34"),
			formassist.Orange: lipgloss.Color("208"),
			formassist.Red:    lipgloss.Color("196"),
		},
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),                                            // Purple
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true), // Cyan
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true), // Pink
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Indicators: map[string]lipgloss.Color{
			formassist.Green:  lipgloss.Color("120"),
			formassist.Orange: lipgloss.Color("215"),
			formassist.Red:    lipgloss.Color("210"),
		},
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}

// IndicatorColor returns the border colour for an indicator label, falling
// back to the theme border when the label is empty or unknown.
func (t Theme) IndicatorColor(label string) lipgloss.Color {
	if c, ok := t.Indicators[label]; ok {
		return c
	}
	return t.Border
}
