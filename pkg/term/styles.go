// Package term renders controls as styled terminal text and hosts them in an
// interactive bubbletea program.
package term

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/theme"
)

// Indicators.
const (
	RadioSelected   = "(●)"
	RadioUnselected = "( )"
	UnderlineRune   = "━"
	FocusMarker     = "›"
)

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Text     lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Help     lipgloss.Style

	// Per-state fills for the three-way selector.
	On      lipgloss.Style
	Off     lipgloss.Style
	Neutral lipgloss.Style
	Frame   lipgloss.Style
}

// NewStyles derives Styles from th. A nil theme uses the light defaults.
func NewStyles(th *theme.ThemeData) Styles {
	rp := th.RadioPanelThemeOf()
	tw := th.ThreeWayThemeOf()
	return Styles{
		Text:     lipgloss.NewStyle().Foreground(Color(rp.TextColor)),
		Active:   lipgloss.NewStyle().Foreground(Color(rp.ActiveColor)).Bold(true),
		Inactive: lipgloss.NewStyle().Foreground(Color(rp.InactiveColor)),
		Help:     lipgloss.NewStyle().Foreground(Color(rp.InactiveColor)).Italic(true),
		On:       lipgloss.NewStyle().Background(Color(tw.OnColor)).Foreground(Color(tw.TextColor)).Bold(true),
		Off:      lipgloss.NewStyle().Background(Color(tw.OffColor)).Foreground(Color(tw.TextColor)).Bold(true),
		Neutral:  lipgloss.NewStyle().Background(Color(tw.NeutralColor)).Foreground(Color(tw.TextColor)).Bold(true),
		Frame:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Color(tw.BorderColor)),
	}
}

// Color converts c to a lipgloss hex color, dropping alpha.
func Color(c graphics.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF))
}
