package selection

import (
	"github.com/go-drift/controls/pkg/events"
	"github.com/go-drift/controls/pkg/property"
)

// Activated is raised by an Item that wants to become the selected one.
var Activated = events.NewRoutedEvent("Activated", events.Bubble)

// Item is a selectable child carrying a candidate value.
//
// Its active flag and style are projections written only by the Group it is
// attached to. An Item that is never attached keeps its defaults.
type Item[T comparable] struct {
	events.Router

	value    T
	label    string
	disabled bool

	active *property.Property[bool]
	style  *property.Property[SharedStyle]

	group  *Group[T]
	parent events.Node
}

// NewItem creates a detached item for value.
func NewItem[T comparable](value T, label string) *Item[T] {
	return &Item[T]{
		value:  value,
		label:  label,
		active: property.New("IsActive", false),
		style:  property.New("SharedStyle", DefaultSharedStyle()),
	}
}

// Value returns the candidate value.
func (i *Item[T]) Value() T {
	return i.value
}

// IsActive reports whether the value equals the group's selected value.
func (i *Item[T]) IsActive() bool {
	return i.active.Get()
}

// Style returns the last style the group pushed.
func (i *Item[T]) Style() SharedStyle {
	return i.style.Get()
}

// Variant returns the template variant pushed by the group.
func (i *Item[T]) Variant() Variant {
	return i.style.Get().Variant
}

// CornerRadius returns the corner radius pushed by the group.
func (i *Item[T]) CornerRadius() float64 {
	return i.style.Get().CornerRadius
}

// UnderlineHeight returns the underline height pushed by the group.
func (i *Item[T]) UnderlineHeight() float64 {
	return i.style.Get().UnderlineHeight
}

// Label returns the text hosts display for the item.
func (i *Item[T]) Label() string {
	return i.label
}

// SetLabel changes the display text.
func (i *Item[T]) SetLabel(label string) {
	i.label = label
}

// Disabled reports whether Activate is ignored.
func (i *Item[T]) Disabled() bool {
	return i.disabled
}

// SetDisabled enables or disables activation. A disabled item can still be
// active when the group selects its value directly.
func (i *Item[T]) SetDisabled(disabled bool) {
	i.disabled = disabled
}

// Group returns the group the item is attached to, or nil.
func (i *Item[T]) Group() *Group[T] {
	return i.group
}

// Activate raises Activated from this item and reports whether an ancestor
// handled it. Disabled items do nothing.
func (i *Item[T]) Activate() bool {
	if i.disabled {
		return false
	}
	return events.Raise(i, &events.Args{Event: Activated})
}

// OnActiveChanged registers fn for active flag changes.
func (i *Item[T]) OnActiveChanged(fn func(active bool)) func() {
	if fn == nil {
		return func() {}
	}
	return i.active.AddListener(func(_, active bool) { fn(active) })
}

// OnStyleChanged registers fn for style changes pushed by the group.
func (i *Item[T]) OnStyleChanged(fn func(SharedStyle)) func() {
	if fn == nil {
		return func() {}
	}
	return i.style.AddListener(func(_, s SharedStyle) { fn(s) })
}

// ActiveProperty exposes the active flag for one-way bindings.
func (i *Item[T]) ActiveProperty() property.ReadOnly[bool] {
	return i.active
}

// EventParent implements events.Node. A parent set by the hosting tree wins
// over the group, so items may sit inside decorators within the group.
func (i *Item[T]) EventParent() events.Node {
	if i.parent != nil {
		return i.parent
	}
	if i.group != nil {
		return i.group
	}
	return nil
}

// SetEventParent places the item under a hosting-tree node.
func (i *Item[T]) SetEventParent(parent events.Node) {
	i.parent = parent
}

// Handlers implements events.Receiver.
func (i *Item[T]) Handlers() *events.Router {
	return &i.Router
}

func (i *Item[T]) setActive(active bool) {
	i.active.Set(active)
}

func (i *Item[T]) applyStyle(s SharedStyle) {
	i.style.Set(s)
}
