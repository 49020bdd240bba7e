package events

type handlerEntry struct {
	id int
	fn Handler
}

// Router holds the handlers attached to one node. The zero value is ready to
// use; embed it and return it from Handlers to make a node a Receiver.
type Router struct {
	handlers map[*RoutedEvent][]handlerEntry
	nextID   int
}

// AddHandler attaches fn for ev and returns a function that detaches it.
func (r *Router) AddHandler(ev *RoutedEvent, fn Handler) func() {
	if ev == nil || fn == nil {
		return func() {}
	}
	if r.handlers == nil {
		r.handlers = make(map[*RoutedEvent][]handlerEntry)
	}
	r.nextID++
	id := r.nextID
	r.handlers[ev] = append(r.handlers[ev], handlerEntry{id: id, fn: fn})
	return func() {
		entries := r.handlers[ev]
		for i, e := range entries {
			if e.id == id {
				r.handlers[ev] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// HandlerCount returns the number of handlers attached for ev.
func (r *Router) HandlerCount(ev *RoutedEvent) int {
	return len(r.handlers[ev])
}

func (r *Router) invoke(sender Node, args *Args) {
	entries := r.handlers[args.Event]
	if len(entries) == 0 {
		return
	}
	// Handlers may detach themselves while running.
	snapshot := append([]handlerEntry(nil), entries...)
	for _, e := range snapshot {
		e.fn(sender, args)
		if args.Handled {
			return
		}
	}
}

// Element is a plain node for hosting trees: a decorator or layout wrapper
// that only forwards events to its parent and may carry handlers of its own.
type Element struct {
	Router
	parent Node
}

// NewElement creates an element under parent.
func NewElement(parent Node) *Element {
	return &Element{parent: parent}
}

// EventParent implements Node.
func (e *Element) EventParent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// SetParent moves the element under a new parent.
func (e *Element) SetParent(parent Node) {
	e.parent = parent
}

// Handlers implements Receiver.
func (e *Element) Handlers() *Router {
	return &e.Router
}
