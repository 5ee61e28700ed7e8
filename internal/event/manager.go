// internal/event/manager.go
package event

import (
	"sync"

	"github.com/bethropolis/glance/internal/logger"
)

// Handler receives dispatched events. Returning true consumes the event and
// stops delivery to handlers subscribed after it.
type Handler func(e Event) bool

// Manager delivers events to subscribers synchronously, in subscription
// order.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler for eventType.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Handler subscribed to %v", eventType)
}

// Dispatch sends an event to the handlers of its type and reports whether
// one of them consumed it. A nil Manager drops every event.
func (m *Manager) Dispatch(eventType Type, data interface{}) bool {
	if m == nil {
		return false
	}

	m.mu.RLock()
	// Copy so handlers may subscribe while we iterate.
	handlers := append([]Handler(nil), m.handlers[eventType]...)
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return false
	}

	logger.DebugTagf("event", "Dispatching %v to %d handler(s)", eventType, len(handlers))
	e := Event{Type: eventType, Data: data}
	for _, handler := range handlers {
		if handler(e) {
			return true
		}
	}
	return false
}
