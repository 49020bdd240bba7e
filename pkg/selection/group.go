package selection

import (
	"fmt"
	"slices"

	"github.com/go-drift/controls/pkg/coerce"
	"github.com/go-drift/controls/pkg/errors"
	"github.com/go-drift/controls/pkg/events"
	"github.com/go-drift/controls/pkg/property"
)

// maxSyncPasses bounds how often a sync pass repeats when listeners keep
// changing the selection from inside it.
const maxSyncPasses = 32

// Group is the coordinator for a set of items. It owns the selected value
// and the SharedStyle; items are held by reference and owned by the host.
type Group[T comparable] struct {
	events.Router

	parent events.Node

	selected        *property.Property[T]
	committed       *property.Property[T]
	mode            *property.Property[SelectionMode]
	variant         *property.Property[Variant]
	cornerRadius    *property.Property[float64]
	underlineHeight *property.Property[float64]
	shared          *property.Property[SharedStyle]

	children  []*Item[T]
	styleHook func(SharedStyle)

	syncing       bool
	syncDirty     bool
	deferredStyle bool
}

// GroupOption configures a Group at construction.
type GroupOption[T comparable] func(*groupConfig[T])

type groupConfig[T comparable] struct {
	selected  T
	style     SharedStyle
	styleHook func(SharedStyle)
	coerce    coerce.Func[T]
}

// WithSelectedValue sets the initial selected value.
func WithSelectedValue[T comparable](v T) GroupOption[T] {
	return func(c *groupConfig[T]) { c.selected = v }
}

// WithStyle sets the initial shared style.
func WithStyle[T comparable](s SharedStyle) GroupOption[T] {
	return func(c *groupConfig[T]) { c.style = s }
}

// WithStyleHook installs fn to run on every style change, before the style
// is pushed to items. It also runs once at construction.
func WithStyleHook[T comparable](fn func(SharedStyle)) GroupOption[T] {
	return func(c *groupConfig[T]) { c.styleHook = fn }
}

// WithValueCoerce installs fn to normalize every selected value, including
// values adopted from activated items.
func WithValueCoerce[T comparable](fn coerce.Func[T]) GroupOption[T] {
	return func(c *groupConfig[T]) { c.coerce = fn }
}

// NewGroup creates an empty group. The selected value defaults to the zero
// value of T, which may coincide with an item's value.
func NewGroup[T comparable](opts ...GroupOption[T]) *Group[T] {
	cfg := groupConfig[T]{style: DefaultSharedStyle()}
	for _, opt := range opts {
		opt(&cfg)
	}
	style := cfg.style.Coerced()

	g := &Group[T]{styleHook: cfg.styleHook}
	selOpts := []property.Option[T]{property.WithChanged(func(_, _ T) { g.sync() })}
	if cfg.coerce != nil {
		selOpts = append(selOpts, property.WithCoerce(cfg.coerce))
		cfg.selected = cfg.coerce(cfg.selected)
	}
	g.selected = property.New("SelectedValue", cfg.selected, selOpts...)
	g.committed = property.New("SelectedValueChanged", cfg.selected)
	g.mode = property.New("SelectionMode", SelectionSingle,
		property.WithCoerce(coerce.Fixed(SelectionSingle)))
	g.variant = property.New("Variant", style.Variant,
		property.WithCoerce(coerceVariant),
		property.WithChanged(func(_, _ Variant) { g.styleChanged() }))
	g.cornerRadius = property.New("CornerRadius", style.CornerRadius,
		property.WithCoerce(coerceCornerRadius),
		property.WithChanged(func(_, _ float64) { g.styleChanged() }))
	g.underlineHeight = property.New("UnderlineHeight", style.UnderlineHeight,
		property.WithCoerce(coerceUnderlineHeight),
		property.WithChanged(func(_, _ float64) { g.styleChanged() }))
	g.shared = property.New("SharedStyle", style)

	g.AddHandler(Activated, g.onActivated)
	if g.styleHook != nil {
		g.styleHook(style)
	}
	return g
}

// SelectedValue returns the selected value.
func (g *Group[T]) SelectedValue() T {
	return g.selected.Get()
}

// SetSelectedValue selects v and re-derives every item's active flag before
// returning. Selection listeners fire only when the value changes.
func (g *Group[T]) SetSelectedValue(v T) {
	g.selected.Set(v)
}

// SelectedValueProperty exposes the selected value for two-way binding.
func (g *Group[T]) SelectedValueProperty() *property.Property[T] {
	return g.selected
}

// OnSelectionChanged registers fn to run after the selected value changes,
// whether set directly or adopted from an activated item. Items are already
// consistent when fn runs. Changes made by item listeners while the group is
// updating its items are reported together as one change.
func (g *Group[T]) OnSelectionChanged(fn func(old, new T)) func() {
	if fn == nil {
		return func() {}
	}
	return g.committed.AddListener(fn)
}

// SelectedItems returns the attached items that are active. With unique
// values it holds at most one item.
func (g *Group[T]) SelectedItems() []*Item[T] {
	var out []*Item[T]
	for _, c := range g.children {
		if c.IsActive() {
			out = append(out, c)
		}
	}
	return out
}

// SelectedItem returns the first active item.
func (g *Group[T]) SelectedItem() (*Item[T], bool) {
	for _, c := range g.children {
		if c.IsActive() {
			return c, true
		}
	}
	return nil, false
}

// SelectionMode is always SelectionSingle.
func (g *Group[T]) SelectionMode() SelectionMode {
	return g.mode.Get()
}

// SetSelectionMode accepts any mode and stores SelectionSingle.
func (g *Group[T]) SetSelectionMode(m SelectionMode) {
	g.mode.Set(m)
}

// Style returns the group's shared style.
func (g *Group[T]) Style() SharedStyle {
	return SharedStyle{
		Variant:         g.variant.Get(),
		CornerRadius:    g.cornerRadius.Get(),
		UnderlineHeight: g.underlineHeight.Get(),
	}
}

// SetStyle replaces every style attribute at once; items receive a single
// broadcast.
func (g *Group[T]) SetStyle(s SharedStyle) {
	g.deferredStyle = true
	changed := g.variant.Set(s.Variant)
	changed = g.cornerRadius.Set(s.CornerRadius) || changed
	changed = g.underlineHeight.Set(s.UnderlineHeight) || changed
	g.deferredStyle = false
	if changed {
		g.styleChanged()
	}
}

// Variant returns the template variant.
func (g *Group[T]) Variant() Variant {
	return g.variant.Get()
}

// SetVariant sets the template variant. Unknown variants become
// VariantStandard.
func (g *Group[T]) SetVariant(v Variant) {
	g.variant.Set(v)
}

// CornerRadius returns the corner radius.
func (g *Group[T]) CornerRadius() float64 {
	return g.cornerRadius.Get()
}

// SetCornerRadius sets the corner radius, clamped to [0, MaxCornerRadius].
func (g *Group[T]) SetCornerRadius(r float64) {
	g.cornerRadius.Set(r)
}

// UnderlineHeight returns the underline height.
func (g *Group[T]) UnderlineHeight() float64 {
	return g.underlineHeight.Get()
}

// SetUnderlineHeight sets the underline height, clamped to
// [MinUnderlineHeight, MaxUnderlineHeight].
func (g *Group[T]) SetUnderlineHeight(h float64) {
	g.underlineHeight.Set(h)
}

// OnStyleChanged registers fn to run after the shared style changes and has
// been pushed to every item.
func (g *Group[T]) OnStyleChanged(fn func(SharedStyle)) func() {
	if fn == nil {
		return func() {}
	}
	return g.shared.AddListener(func(_, s SharedStyle) { fn(s) })
}

// Children returns the attached items in order.
func (g *Group[T]) Children() []*Item[T] {
	return slices.Clone(g.children)
}

// Len returns the number of attached items.
func (g *Group[T]) Len() int {
	return len(g.children)
}

// IndexOf returns the position of c, or -1.
func (g *Group[T]) IndexOf(c *Item[T]) int {
	return slices.Index(g.children, c)
}

// AddChild attaches c at the end. An item attached to another group moves.
func (g *Group[T]) AddChild(c *Item[T]) {
	g.InsertChild(len(g.children), c)
}

// InsertChild attaches c at index, clamped to the valid range. Adding an item
// that is already attached to g is a no-op.
func (g *Group[T]) InsertChild(index int, c *Item[T]) {
	if c == nil || c.group == g {
		return
	}
	if c.group != nil {
		c.group.RemoveChild(c)
	}
	index = coerce.Clamp(index, 0, len(g.children))
	g.children = slices.Insert(g.children, index, c)
	c.group = g
	g.populationChanged()
}

// RemoveChild detaches c and reports whether it was attached. The detached
// item becomes inactive and keeps the last style it received.
func (g *Group[T]) RemoveChild(c *Item[T]) bool {
	i := g.IndexOf(c)
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	c.group = nil
	c.setActive(false)
	g.populationChanged()
	return true
}

// ClearChildren detaches every item.
func (g *Group[T]) ClearChildren() {
	old := g.children
	g.children = nil
	for _, c := range old {
		c.group = nil
		c.setActive(false)
	}
}

// Refresh re-derives every active flag and re-broadcasts the style. Hosts
// call it after changing the tree behind the group's back.
func (g *Group[T]) Refresh() {
	g.populationChanged()
}

// EventParent implements events.Node.
func (g *Group[T]) EventParent() events.Node {
	if g.parent == nil {
		return nil
	}
	return g.parent
}

// SetEventParent places the group under a hosting-tree node.
func (g *Group[T]) SetEventParent(parent events.Node) {
	g.parent = parent
}

// Handlers implements events.Receiver.
func (g *Group[T]) Handlers() *events.Router {
	return &g.Router
}

func (g *Group[T]) onActivated(_ events.Node, args *events.Args) {
	item, ok := args.Source.(*Item[T])
	if !ok {
		return
	}
	args.Handled = true
	g.SetSelectedValue(item.Value())
}

func (g *Group[T]) populationChanged() {
	g.broadcast(g.Style())
	g.sync()
}

// sync makes every active flag match the selected value. Listeners on the
// flags may change the selection again; such nested requests mark the pass
// dirty and it repeats, so the flags are consistent when sync returns.
func (g *Group[T]) sync() {
	if g.syncing {
		g.syncDirty = true
		return
	}
	g.syncing = true
	g.syncPasses()
	g.syncing = false
	g.committed.Set(g.selected.Get())
}

func (g *Group[T]) syncPasses() {
	for pass := 0; pass < maxSyncPasses; pass++ {
		g.syncDirty = false
		v := g.selected.Get()
		for _, c := range slices.Clone(g.children) {
			if c.group != g {
				continue
			}
			c.setActive(c.value == v)
		}
		if !g.syncDirty {
			return
		}
	}
	errors.Report(errors.New("selection.Group.sync", errors.KindListener,
		fmt.Errorf("selection still changing after %d passes", maxSyncPasses)))
}

func (g *Group[T]) styleChanged() {
	if g.deferredStyle {
		return
	}
	s := g.Style()
	if g.styleHook != nil {
		g.styleHook(s)
	}
	g.broadcast(s)
	g.shared.Set(s)
}

func (g *Group[T]) broadcast(s SharedStyle) {
	for _, c := range slices.Clone(g.children) {
		if c.group == g {
			c.applyStyle(s)
		}
	}
}
