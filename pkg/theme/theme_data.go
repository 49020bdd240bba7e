// Package theme supplies the resources controls and rendering hosts draw
// with.
//
// Themes are plain values handed to the code that needs them; nothing here
// is looked up from global state. Component themes are optional and derive
// from the ColorScheme when unset:
//
//	th := theme.DefaultDarkTheme()
//	panel.ApplyTheme(th)
//	img := preview.Renderer{Theme: th}.RenderRadioPanel(panel)
package theme

import (
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/selection"
)

// Brightness describes whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ColorScheme is the base palette.
type ColorScheme struct {
	Primary        graphics.Color
	OnPrimary      graphics.Color
	Surface        graphics.Color
	OnSurface      graphics.Color
	SurfaceVariant graphics.Color
	Outline        graphics.Color
	Background     graphics.Color
	OnBackground   graphics.Color
	Positive       graphics.Color
	Negative       graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:        graphics.RGB(0x21, 0x96, 0xF3),
		OnPrimary:      graphics.ColorWhite,
		Surface:        graphics.ColorWhite,
		OnSurface:      graphics.RGB(0x1C, 0x1B, 0x1F),
		SurfaceVariant: graphics.RGB(0xE7, 0xE0, 0xEC),
		Outline:        graphics.RGB(0x79, 0x74, 0x7E),
		Background:     graphics.RGB(0xFA, 0xFA, 0xFA),
		OnBackground:   graphics.RGB(0x1C, 0x1B, 0x1F),
		Positive:       graphics.RGB(0x4C, 0xAF, 0x50),
		Negative:       graphics.RGB(0xE5, 0x39, 0x35),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:        graphics.RGB(0x90, 0xCA, 0xF9),
		OnPrimary:      graphics.RGB(0x0D, 0x47, 0xA1),
		Surface:        graphics.RGB(0x1C, 0x1B, 0x1F),
		OnSurface:      graphics.RGB(0xE6, 0xE1, 0xE5),
		SurfaceVariant: graphics.RGB(0x49, 0x45, 0x4F),
		Outline:        graphics.RGB(0x93, 0x8F, 0x99),
		Background:     graphics.RGB(0x12, 0x12, 0x12),
		OnBackground:   graphics.RGB(0xE6, 0xE1, 0xE5),
		Positive:       graphics.RGB(0x81, 0xC7, 0x84),
		Negative:       graphics.RGB(0xEF, 0x9A, 0x9A),
	}
}

// ThemeData contains all theme configuration.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from ColorScheme if nil.
	RadioPanelTheme *RadioPanelThemeData
	ThreeWayTheme   *ThreeWayThemeData

	// Resources maps symbolic keys to colors for hosts that need more than
	// the component themes provide.
	Resources map[string]graphics.Color
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{ColorScheme: LightColorScheme(), Brightness: BrightnessLight}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{ColorScheme: DarkColorScheme(), Brightness: BrightnessDark}
}

// RadioPanelThemeOf returns the radio panel theme, deriving from ColorScheme
// if not set.
func (t *ThemeData) RadioPanelThemeOf() RadioPanelThemeData {
	if t == nil {
		return DefaultRadioPanelTheme(LightColorScheme())
	}
	if t.RadioPanelTheme != nil {
		return *t.RadioPanelTheme
	}
	return DefaultRadioPanelTheme(t.ColorScheme)
}

// ThreeWayThemeOf returns the three-way theme, deriving from ColorScheme if
// not set.
func (t *ThemeData) ThreeWayThemeOf() ThreeWayThemeData {
	if t == nil {
		return DefaultThreeWayTheme(LightColorScheme())
	}
	if t.ThreeWayTheme != nil {
		return *t.ThreeWayTheme
	}
	return DefaultThreeWayTheme(t.ColorScheme)
}

// Resource looks up a symbolic color.
func (t *ThemeData) Resource(key string) (graphics.Color, bool) {
	if t == nil {
		return 0, false
	}
	c, ok := t.Resources[key]
	return c, ok
}

// ResourceOr looks up a symbolic color, returning fallback when absent.
func (t *ThemeData) ResourceOr(key string, fallback graphics.Color) graphics.Color {
	if c, ok := t.Resource(key); ok {
		return c
	}
	return fallback
}

// SharedStyle returns the radio panel style as a selection.SharedStyle.
func (d RadioPanelThemeData) SharedStyle() selection.SharedStyle {
	return selection.SharedStyle{
		Variant:         d.Template,
		CornerRadius:    d.CornerRadius,
		UnderlineHeight: d.UnderlineHeight,
	}.Coerced()
}
