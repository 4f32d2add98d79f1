package tracker

import (
	"fmt"
	"strings"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/input"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RollPriority walks the table row by row, editing each participant's
// priority. Finishing re-sorts the registry.
type RollPriority struct {
	keys  KeyMap
	input *input.Editor
	row   int
	count int
	name  string
	found bool
}

func NewRollPriority(keys KeyMap) *RollPriority {
	return &RollPriority{
		keys:  keys,
		input: input.NewEditor(),
	}
}

func (*RollPriority) Name() string { return "roll_priority" }

func (r *RollPriority) Transitions() []Transition[*encounter.Registry] {
	return []Transition[*encounter.Registry]{
		{Binding: r.keys.Cancel, Next: func() State[*encounter.Registry] { return NewHome(r.keys) }},
	}
}

func (*RollPriority) NeedsKeyboard() bool { return true }

func (r *RollPriority) Help() string {
	return strings.Join([]string{
		helpLine(r.keys.Cancel, "cancel, "+homeDescription),
		helpLine(r.keys.Enter, "set priority, next participant"),
		helpLine(r.keys.Finish, "set priority and finish, sort all participants"),
		helpLine(r.keys.NextRow, "next participant"),
		helpLine(r.keys.PrevRow, "previous participant"),
		helpLine(r.keys.Remove, "remove participant"),
	}, "\n")
}

func (r *RollPriority) Init(reg *encounter.Registry) {
	r.selectRow(reg, 0)
}

func (r *RollPriority) HandleKey(msg tea.KeyMsg, reg *encounter.Registry) (State[*encounter.Registry], bool) {
	if r.input.Update(msg) {
		return nil, true
	}
	switch {
	case key.Matches(msg, r.keys.Finish):
		r.commit(reg)
		reg.Sort()
		return NewHome(r.keys), true
	case key.Matches(msg, r.keys.Enter), key.Matches(msg, r.keys.NextRow):
		r.step(reg, 1)
	case key.Matches(msg, r.keys.PrevRow):
		r.step(reg, -1)
	case key.Matches(msg, r.keys.Remove):
		r.remove(reg)
	default:
		return nil, false
	}
	return nil, true
}

func (r *RollPriority) Form() *FormView {
	name := "Unknown"
	if r.found {
		name = r.name
	}
	view := &FormView{
		Title:  "Rolling Priority for " + name,
		Fields: []FieldView{{Label: "Priority", Value: r.input.Value(), Active: true}},
		Input:  InputView{Text: r.input.Value(), Cursor: r.input.Cursor()},
	}
	if r.found {
		view.Hints = []string{fmt.Sprintf("participant %d of %d", r.row+1, r.count)}
	}
	return view
}

func (*RollPriority) Done() bool { return false }

func (*RollPriority) sealed() {}

// commit writes a non-empty editor buffer to the current row. An empty
// buffer leaves the row untouched.
func (r *RollPriority) commit(reg *encounter.Registry) {
	text := r.input.Take()
	if strings.TrimSpace(text) == "" {
		return
	}
	p := reg.At(r.row)
	if p == nil {
		return
	}
	p.Priority = encounter.Int(parseNumber(text))
	events.Form.Commit(r.Name(), p.Name, text)
}

func (r *RollPriority) step(reg *encounter.Registry, delta int) {
	n := reg.Len()
	if n == 0 {
		return
	}
	r.commit(reg)
	r.selectRow(reg, ((r.row+delta)%n+n)%n)
}

// remove drops the current row and its unsaved buffer. The selection stays
// on the same index, wrapping to the top when the last row went.
func (r *RollPriority) remove(reg *encounter.Registry) {
	r.input.Take()
	if _, ok := reg.Remove(r.row); !ok {
		return
	}
	row := r.row
	if row >= reg.Len() {
		row = 0
	}
	r.selectRow(reg, row)
}

func (r *RollPriority) selectRow(reg *encounter.Registry, row int) {
	r.row = row
	r.count = reg.Len()
	p := reg.At(row)
	if p == nil {
		reg.Unhighlight()
		r.found = false
		r.name = ""
		r.input.Set("")
		return
	}
	reg.Highlight(row)
	r.found = true
	r.name = p.Name
	r.input.Set(optionalNumber(p.Priority))
	events.Form.Row(r.Name(), row)
}
