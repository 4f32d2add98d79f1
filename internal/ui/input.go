package ui

import (
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) updateCaretModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.caret, cmd = m.caret.Update(msg)
	return cmd
}

// handleKeyMsg feeds the key to the machine. ctrl+c always reaches the quit
// state, even while a form holds the keyboard.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)
	if keyMsg.Type == tea.KeyCtrlC {
		m.machine.Enter(&tracker.Quit{}, keyMsg.String())
		return tea.Quit
	}
	before := m.inputView()
	m.machine.HandleKey(keyMsg)
	if m.machine.Done() {
		return tea.Quit
	}
	if m.inputView() != before {
		m.caretDirty = true
	}
	return nil
}

func (m *Model) inputView() tracker.InputView {
	if form := m.machine.State().Form(); form != nil {
		return form.Input
	}
	return tracker.InputView{}
}

// renderInput draws the editor text with the caret over the rune at the
// cursor, or after the text when the cursor is at the end.
func (m *Model) renderInput(in tracker.InputView) string {
	runes := []rune(in.Text)
	pos := in.Cursor
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	m.caret.Style = m.styles.Cursor.Copy()
	m.caret.TextStyle = m.styles.Input.Copy()
	before := m.styles.Input.Render(string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = m.styles.Input.Render(string(runes[pos+1:]))
	}
	return before + m.renderCaret(caretRune) + after
}

func (m *Model) renderCaret(char string) string {
	m.caret.SetChar(char)
	base := m.caret.TextStyle.Copy().Inline(true)
	if m.caret.Blink {
		return base.Render(char)
	}
	return base.Inherit(m.caret.Style.Copy().Inline(true)).Render(char)
}
