package cpu

// EventKind classifies an observation emitted by the datapath.
type EventKind int

//go:generate go tool stringer -linecomment -type=EventKind
const (
	EVENT_REGISTER = EventKind(0) // register
	EVENT_MEMORY   = EventKind(1) // memory
	EVENT_INPUT    = EventKind(2) // input
	EVENT_OUTPUT   = EventKind(3) // output
)

// Event is a single observation of a state change.
type Event struct {
	Kind    EventKind
	Name    string // Register name, for EVENT_REGISTER.
	Address int    // Memory address, for EVENT_MEMORY.
	Value   Word   // New value.
}

// Observer receives datapath events. The core never performs I/O itself.
type Observer interface {
	Observe(ev Event)
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(ev Event)

// Observe calls the function.
func (fn ObserverFunc) Observe(ev Event) {
	fn(ev)
}

// notify sends an event to an observer, if there is one.
func notify(obs Observer, ev Event) {
	if obs != nil {
		obs.Observe(ev)
	}
}
