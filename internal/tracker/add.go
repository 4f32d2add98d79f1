package tracker

import (
	"strings"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/input"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	addFieldName = iota
	addFieldHitPoints
	addFieldCount
)

const similarLimit = 3

var addFieldLabels = [addFieldCount]string{"Name", "Hit Points"}

// AddParticipant collects a name and hit points, then appends the new
// participant to the registry.
type AddParticipant struct {
	keys      KeyMap
	field     fieldCycle
	input     *input.Editor
	name      *string
	hitPoints *int
	similar   []string
}

func NewAddParticipant(keys KeyMap) *AddParticipant {
	return &AddParticipant{
		keys:  keys,
		field: fieldCycle{count: addFieldCount},
		input: input.NewEditor(keys.editorIgnores()...),
	}
}

func (*AddParticipant) Name() string { return "add_participant" }

func (a *AddParticipant) Transitions() []Transition[*encounter.Registry] {
	return []Transition[*encounter.Registry]{
		{Binding: a.keys.Cancel, Next: func() State[*encounter.Registry] { return NewHome(a.keys) }},
	}
}

func (*AddParticipant) NeedsKeyboard() bool { return true }

func (a *AddParticipant) Help() string {
	return strings.Join([]string{
		helpLine(a.keys.Cancel, "cancel, "+homeDescription),
		helpLine(a.keys.Enter, "set "+strings.ToLower(addFieldLabels[a.field.index])+", next field"),
		helpLine(a.keys.Finish, "add participant and finish"),
		helpLine(a.keys.Next, "next field"),
		helpLine(a.keys.Prev, "previous field"),
	}, "\n")
}

func (a *AddParticipant) Init(*encounter.Registry) {
	a.load()
}

func (a *AddParticipant) HandleKey(msg tea.KeyMsg, reg *encounter.Registry) (State[*encounter.Registry], bool) {
	if a.input.Update(msg) {
		a.refreshSimilar(reg)
		return nil, true
	}
	switch {
	case key.Matches(msg, a.keys.Finish):
		a.commit()
		reg.Add(a.participant())
		return NewHome(a.keys), true
	case key.Matches(msg, a.keys.Enter), key.Matches(msg, a.keys.Next):
		a.move(1)
	case key.Matches(msg, a.keys.Prev):
		a.move(-1)
	default:
		return nil, false
	}
	a.refreshSimilar(reg)
	return nil, true
}

func (a *AddParticipant) Form() *FormView {
	fields := make([]FieldView, 0, addFieldCount)
	for i, label := range addFieldLabels {
		value := a.staged(i)
		if i == a.field.index {
			value = a.input.Value()
		}
		fields = append(fields, FieldView{Label: label, Value: value, Active: i == a.field.index})
	}
	view := &FormView{
		Title:  "Add Participant",
		Fields: fields,
		Input:  InputView{Text: a.input.Value(), Cursor: a.input.Cursor()},
	}
	if len(a.similar) > 0 {
		view.Hints = []string{"similar: " + strings.Join(a.similar, ", ")}
	}
	return view
}

func (*AddParticipant) Done() bool { return false }

func (*AddParticipant) sealed() {}

// commit stores the editor text in the focused field and empties the editor.
func (a *AddParticipant) commit() {
	text := a.input.Take()
	switch a.field.index {
	case addFieldName:
		a.name = &text
	case addFieldHitPoints:
		if strings.TrimSpace(text) == "" {
			a.hitPoints = nil
			break
		}
		v := parseNumber(text)
		a.hitPoints = &v
	}
	events.Form.Commit(a.Name(), addFieldLabels[a.field.index], text)
}

func (a *AddParticipant) move(delta int) {
	a.commit()
	a.field.move(delta)
	a.load()
}

// load puts the focused field's staged value back into the editor.
func (a *AddParticipant) load() {
	a.input.Set(a.staged(a.field.index))
}

func (a *AddParticipant) staged(field int) string {
	switch field {
	case addFieldName:
		if a.name != nil {
			return *a.name
		}
	case addFieldHitPoints:
		return optionalNumber(a.hitPoints)
	}
	return ""
}

func (a *AddParticipant) refreshSimilar(reg *encounter.Registry) {
	if a.field.index != addFieldName {
		a.similar = nil
		return
	}
	a.similar = reg.Similar(a.input.Value(), similarLimit)
}

func (a *AddParticipant) participant() encounter.Participant {
	name := ""
	if a.name != nil {
		name = strings.TrimSpace(*a.name)
	}
	hp := 0
	if a.hitPoints != nil {
		hp = *a.hitPoints
	}
	return encounter.New(name, hp)
}
