package ui

import (
	"strings"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/format/table"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	defaultWidth   = 80
	defaultHeight  = 24
	tableFraction  = 0.75
	inputBoxHeight = 3
	minBoxWidth    = 4
	minBoxHeight   = 2
	nameColumnMax  = 32

	tableTitle         = "Initiative Tracker"
	helpTitle          = "Help"
	inputTitle         = "<enter> to submit"
	noStatePlaceholder = "no state is active"
	emptyTable         = "(no participants)"
)

const (
	tlc = "╭"
	trc = "╮"
	blc = "╰"
	brc = "╯"
	hz  = "─"
	vt  = "│"
)

var tableColumns = []table.Column{
	{Title: "Priority", Align: table.AlignRight},
	{Title: "Name", Max: nameColumnMax},
	{Title: "HP"},
	{Title: "Temp", Align: table.AlignRight},
	{Title: "Actions"},
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.size()
	tableH := int(float64(height) * tableFraction)
	bottomH := height - tableH
	if bottomH < inputBoxHeight+minBoxHeight {
		bottomH = inputBoxHeight + minBoxHeight
		tableH = height - bottomH
	}
	if tableH < minBoxHeight {
		tableH = minBoxHeight
	}
	helpW := width / 2
	formW := width - helpW

	state := m.machine.State()
	top := m.renderTable(width, tableH)
	help := m.renderBox(helpTitle, m.styles.Title, m.helpLines(state.Help()), helpW, bottomH)
	form := m.renderFormPanel(state.Form(), formW, bottomH)
	return lipgloss.JoinVertical(lipgloss.Left, top, lipgloss.JoinHorizontal(lipgloss.Top, help, form))
}

func (m *Model) size() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

func (m *Model) renderTable(width, height int) string {
	rows := m.Registry().Rows()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{
			row.Priority,
			row.Name,
			row.HitPoints,
			row.Temp,
			m.renderActions(row.Actions, row.Highlighted),
		}
	}
	header, lines := table.Format(tableColumns, cells)
	innerW := width - 2
	body := make([]string, 0, len(lines)+1)
	body = append(body, m.styles.Header.Render(header))
	if len(rows) == 0 {
		body = append(body, m.styles.Placeholder.Render(emptyTable))
	}
	for i, line := range lines {
		line = fit(line, innerW)
		if rows[i].Highlighted {
			body = append(body, m.styles.HighlightedRow.Render(line))
			continue
		}
		body = append(body, m.styles.Row.Render(line))
	}
	return m.renderBox(tableTitle, m.styles.Title, body, width, height)
}

// renderActions colours each action marker. Highlighted rows stay plain so
// the row background is not interrupted.
func (m *Model) renderActions(actions encounter.Actions, highlighted bool) string {
	if highlighted {
		return actions.String()
	}
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = m.styles.ActionStyle(a).Render(a.String())
	}
	return strings.Join(parts, "/")
}

func (m *Model) helpLines(help string) []string {
	if help == "" {
		return nil
	}
	lines := strings.Split(help, "\n")
	for i, line := range lines {
		lines[i] = m.styles.Help.Render(line)
	}
	return lines
}

func (m *Model) renderFormPanel(form *tracker.FormView, width, height int) string {
	if form == nil {
		innerW, innerH := boxInner(width, height)
		placeholder := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center,
			m.styles.Placeholder.Render(noStatePlaceholder))
		return m.renderBox("", m.styles.Title, strings.Split(placeholder, "\n"), width, height)
	}
	lines := make([]string, 0, len(form.Fields)+len(form.Hints))
	for _, field := range form.Fields {
		label := m.styles.FieldLabel.Render(field.Label + ":")
		value := field.Value
		marker := "  "
		if field.Active {
			marker = m.styles.ActiveField.Render("› ")
			value = m.styles.ActiveField.Render(value)
		}
		lines = append(lines, marker+label+" "+value)
	}
	for _, hint := range form.Hints {
		lines = append(lines, m.styles.Hint.Render(hint))
	}
	formBox := m.renderBox(form.Title, m.styles.FormTitle, lines, width, height-inputBoxHeight)
	inputBox := m.renderBox(inputTitle, m.styles.Title, []string{m.renderInput(form.Input)}, width, inputBoxHeight)
	return lipgloss.JoinVertical(lipgloss.Left, formBox, inputBox)
}

func boxInner(width, height int) (int, int) {
	if width < minBoxWidth {
		width = minBoxWidth
	}
	if height < minBoxHeight {
		height = minBoxHeight
	}
	return width - 2, height - 2
}

// renderBox draws a rounded border with the title set into the top edge.
// Content rows are padded or truncated to the inner width and the box is
// always exactly width by height cells.
func (m *Model) renderBox(title string, titleStyle *lipgloss.Style, lines []string, width, height int) string {
	innerW, innerH := boxInner(width, height)
	border := m.styles.Border

	titleSeg := ""
	if title != "" {
		titleSeg = " " + title + " "
	}
	// tlc + hz + title + dashes + trc spans the full width.
	dashes := innerW - 1 - lipgloss.Width(titleSeg)
	if dashes < 0 {
		titleSeg = ""
		dashes = innerW - 1
	}
	rows := make([]string, 0, innerH+2)
	rows = append(rows, border.Render(tlc+hz)+titleStyle.Render(titleSeg)+border.Render(strings.Repeat(hz, dashes)+trc))
	for i := 0; i < innerH; i++ {
		var content string
		if i < len(lines) {
			content = lines[i]
		}
		rows = append(rows, border.Render(vt)+fit(content, innerW)+border.Render(vt))
	}
	rows = append(rows, border.Render(blc+strings.Repeat(hz, innerW)+brc))
	return strings.Join(rows, "\n")
}

// fit pads or truncates text to exactly width visible columns.
func fit(text string, width int) string {
	if width <= 0 {
		return ""
	}
	w := lipgloss.Width(text)
	if w > width {
		text = truncate.StringWithTail(text, uint(width-1), "…")
		w = lipgloss.Width(text)
	}
	if w < width {
		text += strings.Repeat(" ", width-w)
	}
	return text
}
