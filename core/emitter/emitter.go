package emitter

import "sync"

// Listener handles an emitted event payload
type Listener func(data any)

// Emitter is a small synchronous in-process event bus
type Emitter struct {
	mu        sync.RWMutex
	listeners map[string][]Listener
}

// New creates an empty emitter
func New() *Emitter {
	return &Emitter{
		listeners: make(map[string][]Listener),
	}
}

// On registers a listener for an event
func (e *Emitter) On(event string, listener Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[event] = append(e.listeners[event], listener)
}

// Emit calls every listener registered for the event, in registration order.
// A nil emitter is a no-op so services can run without one in tests.
func (e *Emitter) Emit(event string, data any) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := append([]Listener(nil), e.listeners[event]...)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}
