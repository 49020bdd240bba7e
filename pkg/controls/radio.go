package controls

import (
	"github.com/go-drift/controls/pkg/property"
	"github.com/go-drift/controls/pkg/selection"
	"github.com/go-drift/controls/pkg/theme"
)

// RadioButtonTemplateStyle selects how a panel's buttons are drawn.
type RadioButtonTemplateStyle = selection.Variant

// Template styles.
const (
	TemplateStandard  = selection.VariantStandard
	TemplateUnderline = selection.VariantUnderline
	TemplateSegmented = selection.VariantSegmented
)

// ParseRadioButtonTemplateStyle parses "standard", "underline" or
// "segmented".
func ParseRadioButtonTemplateStyle(s string) (RadioButtonTemplateStyle, bool) {
	return selection.ParseVariant(s)
}

// Orientation is the direction hosts lay buttons out in.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// RadioButton is one option of a RadioButtonPanel.
type RadioButton struct {
	*selection.Item[int]
}

// NewRadioButton creates a button for value.
func NewRadioButton(value int, label string) *RadioButton {
	return &RadioButton{Item: selection.NewItem(value, label)}
}

// IsChecked reports whether the button's value is the panel's selection.
func (b *RadioButton) IsChecked() bool {
	return b.IsActive()
}

// Check is the user-interaction signal: it asks the enclosing panel to
// select this button's value. It reports whether a panel handled it.
func (b *RadioButton) Check() bool {
	return b.Activate()
}

// TemplateStyle returns the template style pushed by the panel.
func (b *RadioButton) TemplateStyle() RadioButtonTemplateStyle {
	return b.Variant()
}

// RadioButtonPanel is a group of radio buttons sharing one integer
// selection. The default selection is 0, which also selects any button whose
// value is 0.
type RadioButtonPanel struct {
	*selection.Group[int]

	orientation *property.Property[Orientation]
	buttons     map[*selection.Item[int]]*RadioButton
}

// NewRadioButtonPanel creates an empty panel.
func NewRadioButtonPanel(opts ...selection.GroupOption[int]) *RadioButtonPanel {
	return &RadioButtonPanel{
		Group: selection.NewGroup(opts...),
		orientation: property.New("Orientation", Vertical,
			property.WithCoerce[Orientation](func(o Orientation) Orientation {
				if o != Horizontal {
					return Vertical
				}
				return o
			})),
		buttons: make(map[*selection.Item[int]]*RadioButton),
	}
}

// Add appends buttons in order.
func (p *RadioButtonPanel) Add(buttons ...*RadioButton) {
	for _, b := range buttons {
		p.Insert(p.Len(), b)
	}
}

// Insert places b at index.
func (p *RadioButtonPanel) Insert(index int, b *RadioButton) {
	if b == nil {
		return
	}
	p.InsertChild(index, b.Item)
	p.prune()
	if b.Group() == p.Group {
		p.buttons[b.Item] = b
	}
}

// Remove detaches b and reports whether it was attached.
func (p *RadioButtonPanel) Remove(b *RadioButton) bool {
	if b == nil {
		return false
	}
	delete(p.buttons, b.Item)
	return p.RemoveChild(b.Item)
}

// Buttons returns the attached buttons in order. Items attached through the
// embedded Group directly are wrapped on the fly.
func (p *RadioButtonPanel) Buttons() []*RadioButton {
	p.prune()
	children := p.Children()
	out := make([]*RadioButton, 0, len(children))
	for _, c := range children {
		out = append(out, p.wrap(c))
	}
	return out
}

// Button returns the first attached button with value.
func (p *RadioButtonPanel) Button(value int) (*RadioButton, bool) {
	p.prune()
	for _, c := range p.Children() {
		if c.Value() == value {
			return p.wrap(c), true
		}
	}
	return nil, false
}

// CheckedButton returns the first checked button.
func (p *RadioButtonPanel) CheckedButton() (*RadioButton, bool) {
	item, ok := p.SelectedItem()
	if !ok {
		return nil, false
	}
	p.prune()
	return p.wrap(item), true
}

// TemplateStyle returns the panel's template style.
func (p *RadioButtonPanel) TemplateStyle() RadioButtonTemplateStyle {
	return p.Variant()
}

// SetTemplateStyle sets the template style and pushes it to every button.
func (p *RadioButtonPanel) SetTemplateStyle(s RadioButtonTemplateStyle) {
	p.SetVariant(s)
}

// Orientation returns the layout direction.
func (p *RadioButtonPanel) Orientation() Orientation {
	return p.orientation.Get()
}

// SetOrientation sets the layout direction. Unknown values become Vertical.
func (p *RadioButtonPanel) SetOrientation(o Orientation) {
	p.orientation.Set(o)
}

// ApplyTheme adopts the theme's template style, corner radius and underline
// height in a single broadcast.
func (p *RadioButtonPanel) ApplyTheme(th *theme.ThemeData) {
	p.SetStyle(th.RadioPanelThemeOf().SharedStyle())
}

func (p *RadioButtonPanel) wrap(item *selection.Item[int]) *RadioButton {
	if b, ok := p.buttons[item]; ok {
		return b
	}
	b := &RadioButton{Item: item}
	p.buttons[item] = b
	return b
}

// prune forgets wrappers of items that left the panel through the embedded
// Group or by moving to another panel.
func (p *RadioButtonPanel) prune() {
	for item := range p.buttons {
		if item.Group() != p.Group {
			delete(p.buttons, item)
		}
	}
}
