package ui

import (
	"testing"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{})
	if m.Registry() == nil || m.Registry().Len() != 0 {
		t.Fatalf("expected empty registry")
	}
	if m.State().Name() != "home" || m.Done() {
		t.Fatalf("expected running home state, got %s", m.State().Name())
	}
	if w, h := m.size(); w != defaultWidth || h != defaultHeight {
		t.Fatalf("expected default size, got %dx%d", w, h)
	}
}

func TestNewModelUsesGivenRegistry(t *testing.T) {
	reg := encounter.NewRegistry()
	reg.Add(encounter.New("Aria", 10))
	m := NewModel(Options{Registry: reg})
	if m.Registry() != reg {
		t.Fatalf("expected model to edit the given registry")
	}
}

func TestWindowSizeRespectsFixedDimensions(t *testing.T) {
	m := NewModel(Options{Width: 60})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 60 || m.height != 40 {
		t.Fatalf("expected fixed width and tracked height, got %dx%d", m.width, m.height)
	}
}

func TestInitialSizeSeedsUntilResize(t *testing.T) {
	m := NewModel(Options{InitialWidth: 132, InitialHeight: 43})
	if w, h := m.size(); w != 132 || h != 43 {
		t.Fatalf("expected initial size, got %dx%d", w, h)
	}
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	if w, h := m.size(); w != 100 || h != 30 {
		t.Fatalf("expected resize to win, got %dx%d", w, h)
	}
	pinned := NewModel(Options{Width: 70, InitialWidth: 132})
	if w, _ := pinned.size(); w != 70 {
		t.Fatalf("expected fixed width to beat the initial width, got %d", w)
	}
}

func TestHandlerForUnknownMessage(t *testing.T) {
	m := NewModel(Options{})
	if m.handlerFor(struct{}{}) != nil {
		t.Fatalf("expected no handler for unknown message")
	}
	if m.handlerFor(nil) != nil {
		t.Fatalf("expected no handler for nil")
	}
	if m.handlerFor(tea.KeyMsg{}) == nil {
		t.Fatalf("expected key handler")
	}
}

func TestTypingMarksCaretDirty(t *testing.T) {
	m := NewModel(Options{})
	m.Update(runeKey("a"))
	m.handleKeyMsg(runeKey("x"))
	if !m.caretDirty {
		t.Fatalf("expected caret reset after editing")
	}
	m.caretDirty = false
	m.handleKeyMsg(tea.KeyMsg{Type: tea.KeyF1})
	if m.caretDirty {
		t.Fatalf("expected unchanged input to leave caret alone")
	}
}
