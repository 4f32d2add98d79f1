package theme

import (
	"testing"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	"github.com/charmbracelet/lipgloss"
)

func TestNewUsesHighlightColour(t *testing.T) {
	s := New("#ff0000")
	if got := s.HighlightedRow.GetBackground(); got != lipgloss.Color("#ff0000") {
		t.Fatalf("expected custom highlight, got %v", got)
	}
	if got := New("").HighlightedRow.GetBackground(); got != lipgloss.Color(DefaultHighlight) {
		t.Fatalf("expected default highlight, got %v", got)
	}
}

func TestActionStyleCoversEveryAction(t *testing.T) {
	s := New("")
	cases := map[encounter.Action]*lipgloss.Style{
		encounter.Move:           s.Move,
		encounter.ActionStandard: s.Action,
		encounter.BonusAction:    s.BonusAction,
		encounter.Reaction:       s.Reaction,
		encounter.Action(42):     s.Row,
	}
	for action, want := range cases {
		if got := s.ActionStyle(action); got != want {
			t.Fatalf("unexpected style for %v", action)
		}
	}
}
