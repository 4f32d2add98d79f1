package ui

import (
	"strings"
	"testing"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	enterKey  = tea.KeyMsg{Type: tea.KeyEnter}
	escKey    = tea.KeyMsg{Type: tea.KeyEsc}
	finishKey = tea.KeyMsg{Type: tea.KeyCtrlJ}
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestAddThenRollThroughHarness(t *testing.T) {
	harness := NewHarness(NewModel(Options{Width: 100, Height: 30}))

	harness.Send(runeKey("a"))
	harness.Type("Aria")
	harness.Send(enterKey)
	harness.Type("12")
	harness.Send(finishKey)

	harness.Send(runeKey("a"))
	harness.Type("Goblin")
	harness.Keys(enterKey)
	harness.Type("7")
	harness.Send(finishKey)

	reg := harness.Model().Registry()
	if reg.Len() != 2 {
		t.Fatalf("expected 2 participants, got %d", reg.Len())
	}

	harness.Send(runeKey("r"))
	harness.Type("3")
	harness.Send(enterKey)
	harness.Type("18")
	harness.Send(finishKey)

	first, _ := reg.Get(0)
	if first.Name != "Goblin" || *first.Priority != 18 {
		t.Fatalf("expected Goblin first with 18, got %#v", first)
	}
	view := harness.View()
	if !strings.Contains(view, "Goblin") || !strings.Contains(view, "12 / 12") {
		t.Fatalf("expected participants in view, got:\n%s", view)
	}
	if harness.Model().State().Name() != "home" {
		t.Fatalf("expected home state, got %s", harness.Model().State().Name())
	}
}

func TestEscapeLeavesRegistryUntouched(t *testing.T) {
	harness := NewHarness(NewModel(Options{}))
	harness.Send(runeKey("a"))
	harness.Type("Half")
	harness.Send(escKey)
	if harness.Model().Registry().Len() != 0 {
		t.Fatalf("expected no participant after cancel")
	}
	if harness.Model().State().Name() != "home" {
		t.Fatalf("expected home, got %s", harness.Model().State().Name())
	}
}

func TestQuitKeyEndsProgram(t *testing.T) {
	harness := NewHarness(NewModel(Options{}))
	harness.Send(runeKey("q"))
	if !harness.Quit() || !harness.Model().Done() {
		t.Fatalf("expected quit after q")
	}
}

func TestCtrlCQuitsFromForm(t *testing.T) {
	harness := NewHarness(NewModel(Options{}))
	harness.Send(runeKey("a"))
	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !harness.Quit() {
		t.Fatalf("expected ctrl+c to quit while a form is open")
	}
	if got := harness.Model().State().Name(); got != "quit" || !harness.Model().Done() {
		t.Fatalf("expected the machine to reach quit, got %s", got)
	}
}

func TestCustomBindingsReachMachine(t *testing.T) {
	harness := NewHarness(NewModel(Options{
		Bindings: tracker.Bindings{Add: []string{"n"}, Roll: []string{"i"}, Quit: []string{"x"}},
	}))
	harness.Send(runeKey("i"))
	if got := harness.Model().State().Name(); got != "roll_priority" {
		t.Fatalf("expected roll state from rebound key, got %s", got)
	}
	harness.Send(escKey)
	harness.Send(runeKey("x"))
	if !harness.Quit() {
		t.Fatalf("expected rebound quit key to quit")
	}
}
