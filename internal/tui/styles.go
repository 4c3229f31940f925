package tui

import (
	"github.com/charmbracelet/lipgloss"

	"geosvg/internal/config"
	"geosvg/svg"
)

// Palette
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	hoverFg   = lipgloss.Color("#FFA500")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	accentStyle = lipgloss.NewStyle().Foreground(accentFg)
	hoverStyle  = lipgloss.NewStyle().Foreground(hoverFg)
)

// strokeStyle tints the preview with the document's stroke color when
// the terminal can show it. Named colors keep the default foreground.
func strokeStyle(c svg.Color) lipgloss.Style {
	st := lipgloss.NewStyle()
	if hex, ok := config.TerminalHex(c); ok {
		st = st.Foreground(lipgloss.Color(hex))
	}
	return st
}
