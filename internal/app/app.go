package app

import (
	"errors"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging/events"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width     int
	Height    int
	Keys      tracker.Bindings
	Highlight string
	// InitialWidth and InitialHeight size the first frame when Width and
	// Height are unset. Resize events replace them.
	InitialWidth  int
	InitialHeight int
}

// Options converts the config into UI model options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Width:         c.Width,
		Height:        c.Height,
		InitialWidth:  c.InitialWidth,
		InitialHeight: c.InitialHeight,
		Bindings:      c.Keys,
		Highlight:     c.Highlight,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewModel(cfg.Options())
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if m, ok := final.(*ui.Model); ok {
		events.App.Stop(m.State().Name())
	}
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
