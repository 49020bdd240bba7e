package selection

import "github.com/go-drift/controls/pkg/coerce"

// Variant selects the visual template hosts use for items.
type Variant int

const (
	// VariantStandard draws a classic round indicator next to the label.
	VariantStandard Variant = iota
	// VariantUnderline draws the label only and underlines the active item.
	VariantUnderline
	// VariantSegmented draws items as adjacent segments of one bar.
	VariantSegmented
)

func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantUnderline:
		return "underline"
	case VariantSegmented:
		return "segmented"
	default:
		return "unknown"
	}
}

// ParseVariant parses the String form of a Variant.
func ParseVariant(s string) (Variant, bool) {
	for v := VariantStandard; v <= VariantSegmented; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return VariantStandard, false
}

// SelectionMode describes how many items may be active at once.
type SelectionMode int

const (
	// SelectionSingle allows one selected value.
	SelectionSingle SelectionMode = iota
	// SelectionMultiple is accepted by setters but always coerced to
	// SelectionSingle.
	SelectionMultiple
	// SelectionExtended is accepted by setters but always coerced to
	// SelectionSingle.
	SelectionExtended
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionSingle:
		return "single"
	case SelectionMultiple:
		return "multiple"
	case SelectionExtended:
		return "extended"
	default:
		return "unknown"
	}
}

// Bounds applied when style attributes are set.
const (
	MaxCornerRadius        = 64.0
	MinUnderlineHeight     = 0.0
	MaxUnderlineHeight     = 8.0
	DefaultUnderlineHeight = 2.0
)

// SharedStyle is the presentation state a group broadcasts to its items.
type SharedStyle struct {
	Variant         Variant
	CornerRadius    float64
	UnderlineHeight float64
}

// DefaultSharedStyle returns the style items start with.
func DefaultSharedStyle() SharedStyle {
	return SharedStyle{
		Variant:         VariantStandard,
		UnderlineHeight: DefaultUnderlineHeight,
	}
}

// Coerced returns s with every attribute normalized.
func (s SharedStyle) Coerced() SharedStyle {
	return SharedStyle{
		Variant:         coerceVariant(s.Variant),
		CornerRadius:    coerceCornerRadius(s.CornerRadius),
		UnderlineHeight: coerceUnderlineHeight(s.UnderlineHeight),
	}
}

func coerceVariant(v Variant) Variant {
	if v < VariantStandard || v > VariantSegmented {
		return VariantStandard
	}
	return v
}

func coerceCornerRadius(r float64) float64 {
	return coerce.Clamp(r, 0, MaxCornerRadius)
}

func coerceUnderlineHeight(h float64) float64 {
	return coerce.Clamp(h, MinUnderlineHeight, MaxUnderlineHeight)
}
