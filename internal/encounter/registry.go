// Package encounter holds the participants of a combat encounter ordered by
// priority, plus the row currently highlighted by the active form.
package encounter

import (
	"sort"
	"strings"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging/events"
	"github.com/google/uuid"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Registry is the ordered participant list. The highest priority is first.
type Registry struct {
	participants []Participant
	highlighted  int
	lit          bool
}

// NewRegistry returns an empty registry. The zero value is also usable.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of participants.
func (r *Registry) Len() int {
	return len(r.participants)
}

// Add appends the participant and re-sorts. The stored copy is returned
// with its ID and default actions filled in.
func (r *Registry) Add(p Participant) Participant {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if len(p.Actions) == 0 {
		p.Actions = DefaultActions()
	}
	stored := p.clone()
	r.participants = append(r.participants, stored)
	events.Registry.Add(stored.ID, stored.Name)
	r.Sort()
	return stored.clone()
}

// Get returns a copy of the participant at idx.
func (r *Registry) Get(idx int) (Participant, bool) {
	if idx < 0 || idx >= len(r.participants) {
		return Participant{}, false
	}
	return r.participants[idx].clone(), true
}

// At returns the participant at idx for in-place edits, or nil.
func (r *Registry) At(idx int) *Participant {
	if idx < 0 || idx >= len(r.participants) {
		return nil
	}
	return &r.participants[idx]
}

// IndexOf returns the index of the participant with the given ID, or -1.
func (r *Registry) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, p := range r.participants {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Remove deletes the participant at idx. A highlight on the removed row is
// cleared; a highlight below it shifts up with its participant.
func (r *Registry) Remove(idx int) (Participant, bool) {
	if idx < 0 || idx >= len(r.participants) {
		return Participant{}, false
	}
	removed := r.participants[idx]
	r.participants = append(r.participants[:idx], r.participants[idx+1:]...)
	if r.lit {
		switch {
		case r.highlighted == idx:
			r.Unhighlight()
		case r.highlighted > idx:
			r.highlighted--
		}
	}
	if len(r.participants) == 0 {
		r.Unhighlight()
	}
	events.Registry.Remove(removed.ID, removed.Name)
	return removed, true
}

// Sort orders participants by descending priority. Equal priorities keep
// their insertion order and the highlight follows its participant.
func (r *Registry) Sort() {
	highlightedID := ""
	if idx, ok := r.Highlighted(); ok {
		highlightedID = r.participants[idx].ID
	}
	sort.SliceStable(r.participants, func(i, j int) bool {
		return r.participants[i].Rank() > r.participants[j].Rank()
	})
	if highlightedID != "" {
		r.Highlight(r.IndexOf(highlightedID))
	}
	events.Registry.Sort(len(r.participants))
}

// Highlight marks the row at idx. An index outside the registry clears the
// highlight and reports false.
func (r *Registry) Highlight(idx int) bool {
	if idx < 0 || idx >= len(r.participants) {
		r.Unhighlight()
		return false
	}
	r.highlighted = idx
	r.lit = true
	return true
}

// Unhighlight clears the highlighted row.
func (r *Registry) Unhighlight() {
	r.highlighted = 0
	r.lit = false
}

// Highlighted returns the highlighted row, if any.
func (r *Registry) Highlighted() (int, bool) {
	if !r.lit || r.highlighted < 0 || r.highlighted >= len(r.participants) {
		return 0, false
	}
	return r.highlighted, true
}

// Similar returns up to limit participant names that fuzzily match query,
// closest first. A limit <= 0 returns every match.
func (r *Registry) Similar(query string, limit int) []string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(r.participants) == 0 {
		return nil
	}
	names := make([]string, len(r.participants))
	for i, p := range r.participants {
		names[i] = p.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	seen := make(map[string]struct{}, len(ranks))
	matches := make([]string, 0, len(ranks))
	for _, rank := range ranks {
		if _, dup := seen[rank.Target]; dup {
			continue
		}
		seen[rank.Target] = struct{}{}
		matches = append(matches, rank.Target)
		if limit > 0 && len(matches) == limit {
			break
		}
	}
	return matches
}
