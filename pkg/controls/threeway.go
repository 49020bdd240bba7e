package controls

import (
	"github.com/go-drift/controls/pkg/coerce"
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/property"
	"github.com/go-drift/controls/pkg/selection"
	"github.com/go-drift/controls/pkg/theme"
)

// ThreeWayState is the value of a three-way selector.
type ThreeWayState int

const (
	Neutral ThreeWayState = iota
	On
	Off
)

func (s ThreeWayState) String() string {
	switch s {
	case Neutral:
		return "neutral"
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unknown"
	}
}

// ParseThreeWayState parses the String form of a state.
func ParseThreeWayState(s string) (ThreeWayState, bool) {
	for _, st := range []ThreeWayState{Neutral, On, Off} {
		if st.String() == s {
			return st, true
		}
	}
	return Neutral, false
}

// Next returns the state after s in the cycle Neutral, On, Off.
func (s ThreeWayState) Next() ThreeWayState {
	switch s {
	case Neutral:
		return On
	case On:
		return Off
	default:
		return Neutral
	}
}

func coerceState(s ThreeWayState) ThreeWayState {
	if s < Neutral || s > Off {
		return Neutral
	}
	return s
}

// Limits for three-way attributes.
const (
	MinSelectorWidth   = 16.0
	MaxBorderThickness = 4.0
)

// ThreeWayButton is one segment of a ThreeWay.
type ThreeWayButton struct {
	*selection.Item[ThreeWayState]
}

// State returns the state the segment represents.
func (b *ThreeWayButton) State() ThreeWayState {
	return b.Value()
}

// IsChecked reports whether the segment's state is selected.
func (b *ThreeWayButton) IsChecked() bool {
	return b.IsActive()
}

// Check asks the enclosing selector to switch to this segment's state.
func (b *ThreeWayButton) Check() bool {
	return b.Activate()
}

// ThreeWay is a segmented Off/Neutral/On selector. Its three buttons are
// created and attached at construction, laid out Off, Neutral, On.
type ThreeWay struct {
	*selection.Group[ThreeWayState]

	off, neutral, on *ThreeWayButton

	geometry        Geometry
	selectorWidth   *property.Property[float64]
	borderThickness *property.Property[float64]
	onColor         *property.Property[graphics.Color]
	offColor        *property.Property[graphics.Color]
	neutralColor    *property.Property[graphics.Color]
}

// NewThreeWay creates a selector in the Neutral state with the light theme's
// defaults.
func NewThreeWay() *ThreeWay {
	return NewThreeWayWithTheme(theme.DefaultLightTheme())
}

// NewThreeWayWithTheme creates a selector whose defaults, including the
// fallback colors, come from th.
func NewThreeWayWithTheme(th *theme.ThemeData) *ThreeWay {
	d := th.ThreeWayThemeOf()
	t := &ThreeWay{}

	style := selection.DefaultSharedStyle()
	style.Variant = selection.VariantSegmented
	style.CornerRadius = d.CornerRadius
	t.Group = selection.NewGroup(
		selection.WithSelectedValue(Neutral),
		selection.WithStyle[ThreeWayState](style),
		selection.WithStyleHook[ThreeWayState](t.styleChanged),
		selection.WithValueCoerce[ThreeWayState](coerceState),
	)

	t.selectorWidth = property.New("SelectorWidth", d.SelectorWidth,
		property.WithCoerce[float64](func(w float64) float64 { return coerce.AtLeast(w, MinSelectorWidth) }))
	t.borderThickness = property.New("BorderThickness", d.BorderThickness,
		property.WithCoerce[float64](func(v float64) float64 { return coerce.Symmetric(v, MaxBorderThickness) }))
	t.onColor = property.New("OnColor", d.OnColor, property.WithCoerce[graphics.Color](t.fallback(d.OnColor)))
	t.offColor = property.New("OffColor", d.OffColor, property.WithCoerce[graphics.Color](t.fallback(d.OffColor)))
	t.neutralColor = property.New("NeutralColor", d.NeutralColor, property.WithCoerce[graphics.Color](t.fallback(d.NeutralColor)))

	t.off = &ThreeWayButton{Item: selection.NewItem(Off, "Off")}
	t.neutral = &ThreeWayButton{Item: selection.NewItem(Neutral, "-")}
	t.on = &ThreeWayButton{Item: selection.NewItem(On, "On")}
	t.AddChild(t.off.Item)
	t.AddChild(t.neutral.Item)
	t.AddChild(t.on.Item)
	return t
}

// State returns the selected state.
func (t *ThreeWay) State() ThreeWayState {
	return t.SelectedValue()
}

// SetState selects s. Unknown states become Neutral.
func (t *ThreeWay) SetState(s ThreeWayState) {
	t.SetSelectedValue(s)
}

// Cycle advances to the next state and returns it.
func (t *ThreeWay) Cycle() ThreeWayState {
	t.SetState(t.State().Next())
	return t.State()
}

// OnButton returns the On segment.
func (t *ThreeWay) OnButton() *ThreeWayButton { return t.on }

// OffButton returns the Off segment.
func (t *ThreeWay) OffButton() *ThreeWayButton { return t.off }

// NeutralButton returns the Neutral segment.
func (t *ThreeWay) NeutralButton() *ThreeWayButton { return t.neutral }

// Buttons returns the segments in layout order.
func (t *ThreeWay) Buttons() []*ThreeWayButton {
	return []*ThreeWayButton{t.off, t.neutral, t.on}
}

// Geometry returns the radii derived from the current corner radius.
func (t *ThreeWay) Geometry() Geometry {
	return t.geometry
}

// SegmentRadius returns the corner radius a host should give the segment for
// state: Leading for On, Trailing for Off, square for Neutral.
func (t *ThreeWay) SegmentRadius(state ThreeWayState) graphics.CornerRadius {
	switch state {
	case On:
		return t.geometry.Leading
	case Off:
		return t.geometry.Trailing
	default:
		return graphics.CornerRadius{}
	}
}

// SelectorWidth returns the width of each segment.
func (t *ThreeWay) SelectorWidth() float64 {
	return t.selectorWidth.Get()
}

// SetSelectorWidth sets the segment width, at least MinSelectorWidth.
func (t *ThreeWay) SetSelectorWidth(w float64) {
	t.selectorWidth.Set(w)
}

// BorderThickness returns the outline thickness. Negative values inset the
// outline.
func (t *ThreeWay) BorderThickness() float64 {
	return t.borderThickness.Get()
}

// SetBorderThickness sets the outline thickness within
// [-MaxBorderThickness, MaxBorderThickness].
func (t *ThreeWay) SetBorderThickness(v float64) {
	t.borderThickness.Set(v)
}

// StateColor returns the fill color for a selected segment of state.
func (t *ThreeWay) StateColor(state ThreeWayState) graphics.Color {
	switch state {
	case On:
		return t.onColor.Get()
	case Off:
		return t.offColor.Get()
	default:
		return t.neutralColor.Get()
	}
}

// SetStateColor sets the fill color for state. The zero color restores the
// theme default.
func (t *ThreeWay) SetStateColor(state ThreeWayState, c graphics.Color) {
	switch state {
	case On:
		t.onColor.Set(c)
	case Off:
		t.offColor.Set(c)
	default:
		t.neutralColor.Set(c)
	}
}

// ApplyTheme adopts the theme's radius, sizes and colors. Colors the theme
// leaves unset keep the defaults the selector was created with.
func (t *ThreeWay) ApplyTheme(th *theme.ThemeData) {
	d := th.ThreeWayThemeOf()
	t.SetCornerRadius(d.CornerRadius)
	t.SetSelectorWidth(d.SelectorWidth)
	t.SetBorderThickness(d.BorderThickness)
	t.SetStateColor(On, d.OnColor)
	t.SetStateColor(Off, d.OffColor)
	t.SetStateColor(Neutral, d.NeutralColor)
}

func (t *ThreeWay) styleChanged(s selection.SharedStyle) {
	t.geometry = DeriveGeometry(s.CornerRadius)
}

func (t *ThreeWay) fallback(def graphics.Color) func(graphics.Color) graphics.Color {
	return func(c graphics.Color) graphics.Color { return coerce.Coalesce(c, def) }
}
