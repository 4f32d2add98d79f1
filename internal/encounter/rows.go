package encounter

// Row is the renderable form of one participant.
type Row struct {
	Priority    string
	Name        string
	HitPoints   string
	Temp        string
	Actions     Actions
	Highlighted bool
}

// Rows describes the registry for display, in order.
func (r *Registry) Rows() []Row {
	highlighted, ok := r.Highlighted()
	rows := make([]Row, len(r.participants))
	for i, p := range r.participants {
		rows[i] = Row{
			Priority:    p.PriorityText(),
			Name:        p.Name,
			HitPoints:   p.HitPointsText(),
			Temp:        p.TempText(),
			Actions:     append(Actions(nil), p.Actions...),
			Highlighted: ok && i == highlighted,
		}
	}
	return rows
}
