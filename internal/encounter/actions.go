package encounter

import "strings"

// Action is one slot of a participant's action economy.
type Action int

const (
	// Move up to the participant's speed.
	Move Action = iota
	// ActionStandard is a standard action: attack, cast a spell, hide.
	ActionStandard
	// BonusAction is an offhand attack, bonus spell, potion and similar.
	BonusAction
	// Reaction is an opportunity attack, readied action and similar.
	Reaction
)

func (a Action) String() string {
	switch a {
	case Move:
		return "M"
	case ActionStandard:
		return "A"
	case BonusAction:
		return "BA"
	case Reaction:
		return "R"
	}
	return "?"
}

// Actions is the ordered set of actions available to a participant.
type Actions []Action

// DefaultActions is what a participant gets when none are given. Not all
// creatures have bonus actions.
func DefaultActions() Actions {
	return Actions{Move, ActionStandard, Reaction}
}

func (a Actions) String() string {
	parts := make([]string, len(a))
	for i, action := range a {
		parts[i] = action.String()
	}
	return strings.Join(parts, "/")
}
