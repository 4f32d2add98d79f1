package ui

import (
	"reflect"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/theme"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model. Zero values fall back to defaults. Width and
// Height pin the size; InitialWidth and InitialHeight only seed it until the
// first resize.
type Options struct {
	Width         int
	Height        int
	InitialWidth  int
	InitialHeight int
	Bindings      tracker.Bindings
	Highlight     string
	Registry      *encounter.Registry
}

// Model implements the Bubble Tea model for the initiative tracker.
type Model struct {
	machine     *tracker.Machine[*encounter.Registry]
	styles      *theme.Styles
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	caret       cursor.Model
	caretDirty  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel starts the tracker in its home state.
func NewModel(opts Options) *Model {
	reg := opts.Registry
	if reg == nil {
		reg = encounter.NewRegistry()
	}
	keys := tracker.NewKeyMap(opts.Bindings)
	m := &Model{
		machine: tracker.NewMachine[*encounter.Registry](tracker.NewHome(keys), reg),
		styles:  theme.New(opts.Highlight),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	} else {
		m.width = opts.InitialWidth
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	} else {
		m.height = opts.InitialHeight
	}
	c := cursor.New()
	c.Style = m.styles.Cursor.Copy()
	c.TextStyle = m.styles.Input.Copy()
	c.SetChar(" ")
	m.caret = c
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.caret.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 3)
	if cmd := m.updateCaretModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Registry exposes the participants the model edits.
func (m *Model) Registry() *encounter.Registry {
	return m.machine.Target()
}

// State returns the active tracker state.
func (m *Model) State() tracker.State[*encounter.Registry] {
	return m.machine.State()
}

// Done reports whether the tracker reached its terminal state.
func (m *Model) Done() bool {
	return m.machine.Done()
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.caretDirty {
		m.caretDirty = false
		m.caret.Blink = false
		if cmd := m.caret.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
