package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/engine"
)

// EventSource is the part of tcell.Screen the pump reads from
type EventSource interface {
	PollEvent() tcell.Event
}

// Machine turns terminal events into intents
// Stateless apart from the key table: every binding is a single key
type Machine struct {
	keys *KeyTable
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keys: DefaultKeyTable()}
}

// Process maps one event, nil means the event carries no action
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		entry, ok := m.keys.Lookup(ev)
		if !ok {
			return nil
		}
		return &Intent{Type: entry.Type, Direction: entry.Direction}
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	default:
		return nil
	}
}

// Pump polls src in its own goroutine and delivers mapped intents to out
// It stops when ctx is done or the source returns nil (screen finalized)
// Intents are dropped when out is full so a stalled loop never blocks polling
func (m *Machine) Pump(ctx context.Context, src EventSource, out chan<- Intent) {
	engine.Go(func() {
		for {
			ev := src.PollEvent()
			if ev == nil {
				return
			}
			intent := m.Process(ev)
			if intent == nil {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case out <- *intent:
			default:
			}
		}
	})
}
