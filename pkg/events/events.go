// Package events routes notifications from a control up through its
// ancestors.
//
// A routed event starts at its source node and visits each ancestor returned
// by EventParent. Nodes that embed a Router get their handlers invoked in
// turn. Routing stops at the root, or as soon as a handler sets
// Args.Handled.
package events

// Strategy selects how far an event travels.
type Strategy int

const (
	// Bubble visits the source and then every ancestor.
	Bubble Strategy = iota
	// Direct visits only the source.
	Direct
)

func (s Strategy) String() string {
	switch s {
	case Bubble:
		return "bubble"
	case Direct:
		return "direct"
	default:
		return "unknown"
	}
}

// RoutedEvent identifies a kind of routed notification. Events compare by
// identity, so declare each one once as a package-level variable.
type RoutedEvent struct {
	Name     string
	Strategy Strategy
}

// NewRoutedEvent declares a routed event.
func NewRoutedEvent(name string, strategy Strategy) *RoutedEvent {
	return &RoutedEvent{Name: name, Strategy: strategy}
}

// Args travels with an event along its route.
type Args struct {
	// Event is the event being routed.
	Event *RoutedEvent
	// Source is the node that raised the event.
	Source Node
	// Handled stops routing once set.
	Handled bool
}

// Node is a participant in the hosting tree.
type Node interface {
	// EventParent returns the next node on the route, or nil at the root.
	EventParent() Node
}

// Receiver is a node that can have handlers attached.
type Receiver interface {
	Node
	Handlers() *Router
}

// Handler reacts to an event arriving at sender.
type Handler func(sender Node, args *Args)

// Raise routes args from source and reports whether a handler marked it
// handled. A nil source or event is ignored.
func Raise(source Node, args *Args) bool {
	if source == nil || args == nil || args.Event == nil {
		return false
	}
	args.Source = source
	for n := source; n != nil; n = n.EventParent() {
		if r, ok := n.(Receiver); ok {
			r.Handlers().invoke(n, args)
		}
		if args.Handled || args.Event.Strategy == Direct {
			break
		}
	}
	return args.Handled
}

// Route returns the nodes an event raised at source would visit, ignoring
// handlers.
func Route(source Node) []Node {
	var route []Node
	for n := source; n != nil; n = n.EventParent() {
		route = append(route, n)
	}
	return route
}
