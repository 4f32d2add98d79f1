package tracker

import (
	"fmt"
	"strings"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// State is one mode of the tracker operating on a target of type T. The set
// of implementations is closed to this package.
type State[T any] interface {
	// Name identifies the state in traces.
	Name() string
	// Transitions declares the states reachable by a single key, in
	// priority order.
	Transitions() []Transition[T]
	// NeedsKeyboard reports whether raw keys go to the state before the
	// transition table.
	NeedsKeyboard() bool
	Help() string
	// Init runs once when the state becomes active.
	Init(target T)
	// HandleKey offers a key to the state. A non-nil next state replaces
	// the current one; consumed reports whether the key was used.
	HandleKey(msg tea.KeyMsg, target T) (next State[T], consumed bool)
	// Form describes the active form, or nil when there is none.
	Form() *FormView
	// Done reports whether the program should exit.
	Done() bool

	sealed()
}

// Transition declares that Binding switches to the state built by Next.
type Transition[T any] struct {
	Binding key.Binding
	Next    func() State[T]
}

// Lookup returns the first declared transition of s matching msg.
func Lookup[T any](s State[T], msg tea.KeyMsg) (Transition[T], bool) {
	for _, t := range s.Transitions() {
		if key.Matches(msg, t.Binding) {
			return t, true
		}
	}
	return Transition[T]{}, false
}

// TransitionHelp renders one "key: description" line per transition.
func TransitionHelp[T any](s State[T]) string {
	transitions := s.Transitions()
	lines := make([]string, 0, len(transitions))
	for _, t := range transitions {
		h := t.Binding.Help()
		lines = append(lines, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return strings.Join(lines, "\n")
}

// Machine drives a State over a single mutable target. It is not safe for
// concurrent use; one key is handled to completion before the next.
type Machine[T any] struct {
	state  State[T]
	target T
}

// NewMachine starts in initial and runs its entry hook.
func NewMachine[T any](initial State[T], target T) *Machine[T] {
	m := &Machine[T]{state: initial, target: target}
	initial.Init(target)
	return m
}

// State returns the active state.
func (m *Machine[T]) State() State[T] { return m.state }

// Target returns the value the states mutate.
func (m *Machine[T]) Target() T { return m.target }

// Done reports whether the active state is terminal.
func (m *Machine[T]) Done() bool { return m.state.Done() }

// HandleKey routes msg and reports whether the active state changed. States
// that need the keyboard see the key first; anything they leave unconsumed
// is matched against the transition table.
func (m *Machine[T]) HandleKey(msg tea.KeyMsg) bool {
	if m.state.NeedsKeyboard() {
		next, consumed := m.state.HandleKey(msg, m.target)
		if next != nil {
			m.Enter(next, msg.String())
			return true
		}
		if consumed {
			return false
		}
	}
	if t, ok := Lookup(m.state, msg); ok {
		m.Enter(t.Next(), msg.String())
		return true
	}
	events.State.Ignored(m.state.Name(), msg.String())
	return false
}

// Enter makes next the active state, tracing key as the cause, and runs its
// entry hook. Callers may use it to force a state the table does not offer.
func (m *Machine[T]) Enter(next State[T], key string) {
	events.State.Transition(m.state.Name(), next.Name(), key)
	m.state = next
	next.Init(m.target)
}
