package event

import (
	"fmt"
	"sync"
)

// Logger is the minimal logging surface the bus needs, kept small so
// the package does not depend on telemetry.
type Logger interface {
	Warn(msg string, keyvals ...interface{})
}

// Bus fans document lifecycle events out to registered hooks.
//
// A blocking hook runs inline, in registration order, and its error
// aborts the dispatch. Non-blocking hooks each run in their own
// goroutine; their failures and panics are logged and otherwise
// ignored. A nil *Bus is valid and drops every event, so callers with
// hooks disabled never need to branch.
type Bus struct {
	mu     sync.RWMutex
	hooks  []Hook
	logger Logger
}

// NewBus returns an empty bus. A nil logger silences the warnings
// emitted for non-blocking hook failures.
func NewBus(logger Logger) *Bus {
	return &Bus{logger: logger}
}

// Register appends a hook. Hooks cannot be removed; a bus lives for a
// single operation or process.
func (b *Bus) Register(h Hook) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, h)
}

// Emit delivers ev to every hook whose filter matches its type. The
// returned error is the first blocking-hook failure, after which no
// further hooks run for this event.
func (b *Bus) Emit(ev Event) error {
	if b == nil {
		return nil
	}
	b.mu.RLock()
	hooks := make([]Hook, len(b.hooks))
	copy(hooks, b.hooks)
	b.mu.RUnlock()

	for _, h := range hooks {
		if !h.Matches(ev.Type) {
			continue
		}
		if h.IsBlocking() {
			if err := h.Handle(ev); err != nil {
				return fmt.Errorf("blocking hook %s: %w", h.Name(), err)
			}
			continue
		}
		go b.dispatch(h, ev)
	}
	return nil
}

// dispatch runs a non-blocking hook, containing its panics.
func (b *Bus) dispatch(h Hook, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.warn("hook panicked", h, ev, "panic", r)
		}
	}()
	if err := h.Handle(ev); err != nil {
		b.warn("hook failed", h, ev, "error", err)
	}
}

func (b *Bus) warn(msg string, h Hook, ev Event, extra ...interface{}) {
	if b.logger == nil {
		return
	}
	keyvals := append([]interface{}{"hook", h.Name(), "event", string(ev.Type)}, extra...)
	b.logger.Warn(msg, keyvals...)
}
