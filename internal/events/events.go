// Package events carries operational diagnostics from pipeline components to
// whatever front-end is driving them. Components emit events instead of
// printing, so their return values stay the only functional contract.
package events

import (
	"fmt"
	"sync"

	"github.com/genesis3lib/code-react/internal/debug"
)

// Level classifies a diagnostic event.
type Level int

const (
	// LevelInfo is routine progress information.
	LevelInfo Level = iota
	// LevelWarn is a non-fatal condition the operator should see.
	LevelWarn
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	default:
		return "info"
	}
}

// Event is a single diagnostic emitted by a pipeline component.
type Event struct {
	// Level is the event severity.
	Level Level
	// Component identifies the emitting component (e.g. "snapshot", "runner").
	Component string
	// Message is the human-readable diagnostic text.
	Message string
}

// Sink receives diagnostic events. Implementations must be safe for
// concurrent use; the snapshotter may emit from parallel subtree reads.
type Sink interface {
	Emit(e Event)
}

// Nop is a Sink that discards all events.
type Nop struct{}

// Emit implements Sink.
func (Nop) Emit(Event) {}

// Info emits an informational event to sink. A nil sink is allowed and
// behaves like Nop.
func Info(sink Sink, component, format string, args ...interface{}) {
	emit(sink, LevelInfo, component, format, args...)
}

// Warn emits a warning event to sink. A nil sink is allowed and behaves
// like Nop.
func Warn(sink Sink, component, format string, args ...interface{}) {
	emit(sink, LevelWarn, component, format, args...)
}

func emit(sink Sink, level Level, component, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	debug.Debug("[%s] %s", component, msg)
	if sink == nil {
		return
	}
	sink.Emit(Event{Level: level, Component: component, Message: msg})
}

// Recorder is a Sink that records every event it receives. Intended for
// tests that assert on emitted diagnostics.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit implements Sink.
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Warnings returns only the recorded warning events.
func (r *Recorder) Warnings() []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Level == LevelWarn {
			out = append(out, e)
		}
	}
	return out
}
