package theme

import (
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/selection"
)

// RadioPanelThemeData defines default styling for radio button panels.
type RadioPanelThemeData struct {
	// Template is the default template variant.
	Template selection.Variant
	// CornerRadius is the default corner radius.
	CornerRadius float64
	// UnderlineHeight is the default underline height.
	UnderlineHeight float64
	// ActiveColor fills the indicator or segment of the active button.
	ActiveColor graphics.Color
	// InactiveColor outlines inactive buttons.
	InactiveColor graphics.Color
	// BackgroundColor fills inactive buttons.
	BackgroundColor graphics.Color
	// TextColor is the label color.
	TextColor graphics.Color
	// ActiveTextColor is the label color on an active segment.
	ActiveTextColor graphics.Color
}

// ThreeWayThemeData defines default styling for three-way selectors.
type ThreeWayThemeData struct {
	// CornerRadius is the default corner radius.
	CornerRadius float64
	// SelectorWidth is the default width of each segment.
	SelectorWidth float64
	// BorderThickness is the default outline thickness.
	BorderThickness float64
	// OnColor fills the On segment when selected.
	OnColor graphics.Color
	// OffColor fills the Off segment when selected.
	OffColor graphics.Color
	// NeutralColor fills the Neutral segment when selected.
	NeutralColor graphics.Color
	// BorderColor outlines the control.
	BorderColor graphics.Color
	// TextColor is the label color.
	TextColor graphics.Color
}

// DefaultRadioPanelTheme returns RadioPanelThemeData derived from a ColorScheme.
func DefaultRadioPanelTheme(colors ColorScheme) RadioPanelThemeData {
	return RadioPanelThemeData{
		Template:        selection.VariantStandard,
		CornerRadius:    4,
		UnderlineHeight: selection.DefaultUnderlineHeight,
		ActiveColor:     colors.Primary,
		InactiveColor:   colors.Outline,
		BackgroundColor: colors.Surface,
		TextColor:       colors.OnSurface,
		ActiveTextColor: colors.OnPrimary,
	}
}

// DefaultThreeWayTheme returns ThreeWayThemeData derived from a ColorScheme.
func DefaultThreeWayTheme(colors ColorScheme) ThreeWayThemeData {
	return ThreeWayThemeData{
		CornerRadius:    6,
		SelectorWidth:   32,
		BorderThickness: 1,
		OnColor:         colors.Positive,
		OffColor:        colors.Negative,
		NeutralColor:    colors.SurfaceVariant,
		BorderColor:     colors.Outline,
		TextColor:       colors.OnSurface,
	}
}
