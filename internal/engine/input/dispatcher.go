package input

// Listener receives dispatched events.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function into a Listener.
type ListenerFunc func(e Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription identifies a registered listener.
type Subscription struct {
	typ EventType
	id  uint64
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher delivers events to listeners registered per event type, in
// subscription order. It is not safe for concurrent use; all events are
// dispatched from the loop goroutine.
type Dispatcher struct {
	listeners map[EventType][]entry
	nextID    uint64
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]entry),
	}
}

// Subscribe registers l for events of type t.
func (d *Dispatcher) Subscribe(t EventType, l Listener) Subscription {
	d.nextID++
	d.listeners[t] = append(d.listeners[t], entry{id: d.nextID, listener: l})
	return Subscription{typ: t, id: d.nextID}
}

// Unsubscribe removes a listener. Unknown subscriptions are ignored.
func (d *Dispatcher) Unsubscribe(s Subscription) {
	list := d.listeners[s.typ]
	for i, e := range list {
		if e.id == s.id {
			d.listeners[s.typ] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of listeners for t.
func (d *Dispatcher) Listeners(t EventType) int {
	return len(d.listeners[t])
}

// Dispatch sends e to every listener of its type.
func (d *Dispatcher) Dispatch(e Event) {
	for _, en := range d.listeners[e.Type] {
		en.listener.OnEvent(e)
	}
}
