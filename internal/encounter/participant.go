package encounter

import (
	"math"
	"strconv"
)

// Participant is one entrant in a combat encounter.
type Participant struct {
	ID       string
	Name     string
	Priority *int
	Current  *int
	Max      *int
	Temp     *int
	Actions  Actions
}

// New builds a participant with full hit points and no priority yet.
func New(name string, hitPoints int) Participant {
	return Participant{
		Name:    name,
		Current: Int(hitPoints),
		Max:     Int(hitPoints),
	}
}

// Int returns a pointer to v.
func Int(v int) *int {
	return &v
}

// Rank is the sort key for the participant. Unset priority ranks below
// every set value.
func (p Participant) Rank() int {
	if p.Priority == nil {
		return math.MinInt
	}
	return *p.Priority
}

// PriorityText renders the priority, or "?" while unset.
func (p Participant) PriorityText() string {
	return optionalText(p.Priority, "?")
}

// HitPointsText renders current and max hit points as "cur / max".
func (p Participant) HitPointsText() string {
	return optionalText(p.Current, "?") + " / " + optionalText(p.Max, "?")
}

// TempText renders temporary hit points, empty while unset.
func (p Participant) TempText() string {
	return optionalText(p.Temp, "")
}

func optionalText(v *int, fallback string) string {
	if v == nil {
		return fallback
	}
	return strconv.Itoa(*v)
}

func (p Participant) clone() Participant {
	dup := p
	dup.Priority = cloneInt(p.Priority)
	dup.Current = cloneInt(p.Current)
	dup.Max = cloneInt(p.Max)
	dup.Temp = cloneInt(p.Temp)
	dup.Actions = append(Actions(nil), p.Actions...)
	return dup
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return Int(*v)
}
