package tracker

import (
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	homeDescription = "back to initiative tracker"
	addDescription  = "add participant"
	rollDescription = "roll priority for all participants"
	quitDescription = "quit"
)

// Home shows the tracker table and waits for a command key.
type Home struct {
	keys KeyMap
}

func NewHome(keys KeyMap) *Home {
	return &Home{keys: keys}
}

func (*Home) Name() string { return "home" }

func (h *Home) Transitions() []Transition[*encounter.Registry] {
	return []Transition[*encounter.Registry]{
		{Binding: h.keys.Add, Next: func() State[*encounter.Registry] { return NewAddParticipant(h.keys) }},
		{Binding: h.keys.Roll, Next: func() State[*encounter.Registry] { return NewRollPriority(h.keys) }},
		{Binding: h.keys.Quit, Next: func() State[*encounter.Registry] { return &Quit{} }},
	}
}

func (*Home) NeedsKeyboard() bool { return false }

func (h *Home) Help() string { return TransitionHelp[*encounter.Registry](h) }

// Init drops any highlight left behind by a form.
func (*Home) Init(reg *encounter.Registry) { reg.Unhighlight() }

func (*Home) HandleKey(tea.KeyMsg, *encounter.Registry) (State[*encounter.Registry], bool) {
	return nil, false
}

func (*Home) Form() *FormView { return nil }

func (*Home) Done() bool { return false }

func (*Home) sealed() {}

// Quit is terminal. Reaching it ends the program.
type Quit struct{}

func (*Quit) Name() string { return "quit" }

func (*Quit) Transitions() []Transition[*encounter.Registry] { return nil }

func (*Quit) NeedsKeyboard() bool { return false }

func (q *Quit) Help() string { return TransitionHelp[*encounter.Registry](q) }

func (*Quit) Init(*encounter.Registry) {}

func (*Quit) HandleKey(tea.KeyMsg, *encounter.Registry) (State[*encounter.Registry], bool) {
	return nil, false
}

func (*Quit) Form() *FormView { return nil }

func (*Quit) Done() bool { return true }

func (*Quit) sealed() {}
