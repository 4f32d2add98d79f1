package theme

import (
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/encounter"
	"github.com/charmbracelet/lipgloss"
)

// DefaultHighlight is the background of the highlighted table row.
const DefaultHighlight = "#003082"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Border         *lipgloss.Style
	Title          *lipgloss.Style
	Header         *lipgloss.Style
	Row            *lipgloss.Style
	HighlightedRow *lipgloss.Style
	Help           *lipgloss.Style
	FormTitle      *lipgloss.Style
	FieldLabel     *lipgloss.Style
	ActiveField    *lipgloss.Style
	Input          *lipgloss.Style
	Cursor         *lipgloss.Style
	Hint           *lipgloss.Style
	Placeholder    *lipgloss.Style
	Move           *lipgloss.Style
	Action         *lipgloss.Style
	BonusAction    *lipgloss.Style
	Reaction       *lipgloss.Style
}

// New builds the style set with the given highlight colour. A blank colour
// uses DefaultHighlight.
func New(highlight string) *Styles {
	if highlight == "" {
		highlight = DefaultHighlight
	}
	return &Styles{
		Border: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		),
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		),
		Header: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
		),
		Row: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		),
		HighlightedRow: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color(highlight)).Bold(true),
		),
		Help: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
		),
		FormTitle: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		),
		FieldLabel: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		),
		ActiveField: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		),
		Input: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")),
		),
		Hint: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		),
		Placeholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
		Move: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
		),
		Action: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		),
		BonusAction: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		),
		Reaction: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		),
	}
}

// ActionStyle returns the colour for one action marker.
func (s *Styles) ActionStyle(a encounter.Action) *lipgloss.Style {
	switch a {
	case encounter.Move:
		return s.Move
	case encounter.ActionStandard:
		return s.Action
	case encounter.BonusAction:
		return s.BonusAction
	case encounter.Reaction:
		return s.Reaction
	}
	return s.Row
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
