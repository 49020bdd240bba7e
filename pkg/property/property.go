// Package property provides observable attribute slots.
//
// A Property is a named value with a coercion hook and a change hook. Set runs
// coerce, stores the result, runs the change hook, and then notifies
// listeners, all before it returns:
//
//	radius := property.New("CornerRadius", 4.0,
//	    property.WithCoerce(coerce.Range(0.0, 64.0)),
//	    property.WithChanged(func(old, new float64) { broadcast() }),
//	)
//	radius.Set(100) // stored as 64
//
// Properties are not safe for concurrent use. They are owned by a control and
// driven from the host's UI goroutine.
package property

import (
	"fmt"

	"github.com/go-drift/controls/pkg/coerce"
	"github.com/go-drift/controls/pkg/errors"
)

// maxNotifyRounds bounds how often Set re-notifies when listeners keep
// replacing the value.
const maxNotifyRounds = 32

// Listener is notified after a property value changes.
type Listener[T any] func(old, new T)

// ReadOnly is the observable surface of a property without its setter.
type ReadOnly[T comparable] interface {
	Name() string
	Get() T
	AddListener(fn Listener[T]) func()
}

// Property is an observable attribute slot.
type Property[T comparable] struct {
	name      string
	value     T
	coerce    coerce.Func[T]
	changed   func(old, new T)
	listeners []*listenerEntry[T]
	nextID    int
	setting   bool
}

type listenerEntry[T any] struct {
	id     int
	fn     Listener[T]
	active bool
}

// Option configures a Property at construction.
type Option[T comparable] func(*Property[T])

// WithCoerce installs the coercion applied on every Set, including the
// initial value.
func WithCoerce[T comparable](fn coerce.Func[T]) Option[T] {
	return func(p *Property[T]) { p.coerce = fn }
}

// WithChanged installs the change hook. It runs after the value is stored and
// before listeners are notified. Unlike listeners it is not guarded: it is the
// owner's own cascade.
func WithChanged[T comparable](fn func(old, new T)) Option[T] {
	return func(p *Property[T]) { p.changed = fn }
}

// New creates a property holding the coerced initial value.
func New[T comparable](name string, initial T, opts ...Option[T]) *Property[T] {
	p := &Property[T]{name: name}
	for _, opt := range opts {
		opt(p)
	}
	p.value = p.apply(initial)
	return p
}

// Name returns the attribute name.
func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the current value.
func (p *Property[T]) Get() T {
	return p.value
}

// Set coerces v and stores it. It reports whether the stored value changed.
// Change hooks and listeners run only when it did.
//
// A Set made from inside the change hook or a listener of the same property
// stores the value and runs the hook, but leaves notification to the
// outermost Set. That one stops delivering a value as soon as it has been
// replaced and then notifies every listener of the latest value, so no
// listener is handed a stale value last.
func (p *Property[T]) Set(v T) bool {
	v = p.apply(v)
	if v == p.value {
		return false
	}
	old := p.value
	p.value = v
	if p.setting {
		if p.changed != nil {
			p.changed(old, v)
		}
		return true
	}
	p.setting = true
	defer func() { p.setting = false }()
	if p.changed != nil {
		p.changed(old, v)
	}
	for round := 0; p.value != old; round++ {
		if round == maxNotifyRounds {
			errors.Report(errors.New("property."+p.name, errors.KindListener,
				fmt.Errorf("value still changing after %d notification rounds", maxNotifyRounds)))
			break
		}
		cur := p.value
		p.notify(old, cur)
		old = cur
	}
	return true
}

// Coerce returns what Set would store for v without storing it.
func (p *Property[T]) Coerce(v T) T {
	return p.apply(v)
}

// AddListener registers fn and returns a function that removes it.
// Listeners run in registration order. A listener that panics is reported
// through the errors package and the remaining listeners still run.
func (p *Property[T]) AddListener(fn Listener[T]) func() {
	if fn == nil {
		return func() {}
	}
	p.nextID++
	entry := &listenerEntry[T]{id: p.nextID, fn: fn, active: true}
	p.listeners = append(p.listeners, entry)
	return func() {
		entry.active = false
	}
}

// ListenerCount returns the number of registered listeners.
func (p *Property[T]) ListenerCount() int {
	n := 0
	for _, l := range p.listeners {
		if l.active {
			n++
		}
	}
	return n
}

func (p *Property[T]) apply(v T) T {
	if p.coerce != nil {
		return p.coerce(v)
	}
	return v
}

func (p *Property[T]) notify(old, v T) {
	// Snapshot so listeners added during notification wait for the next change.
	active := make([]*listenerEntry[T], 0, len(p.listeners))
	for _, l := range p.listeners {
		if l.active {
			active = append(active, l)
		}
	}
	p.listeners = active
	for _, l := range active {
		if p.value != v {
			return
		}
		if !l.active {
			continue
		}
		errors.Guard("property."+p.name, func() { l.fn(old, v) })
	}
}
