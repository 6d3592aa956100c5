package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/formassist"
)

// truncate shortens text to max display cells.
func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// pad right-pads text to width display cells.
func pad(text string, width int) string {
	text = truncate(text, width)
	if w := ansi.StringWidth(text); w < width {
		return text + fmt.Sprintf("%*s", width-w, "")
	}
	return text
}

// lengthBadge renders "n" coloured by rule, or "n/limit" when limit > 0.
func lengthBadge(rule formassist.LengthRule, value string, limit int) string {
	n := formassist.CharacterCount(value)
	text := fmt.Sprintf("%d", n)
	if limit > 0 {
		text = fmt.Sprintf("%d/%d", n, limit)
	}
	color := CurrentTheme.IndicatorColor(rule.ColorFor(value))
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
