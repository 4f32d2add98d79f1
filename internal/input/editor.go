// Package input provides the single-line text editor shared by every form.
package input

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const charLimit = 128

// Editor wraps a focused textinput.Model with a set of keys it must leave
// to the caller.
type Editor struct {
	input  textinput.Model
	ignore map[string]struct{}
}

// NewEditor returns an empty editor that leaves the given keys unconsumed.
// Keys are compared against tea.KeyMsg.String().
func NewEditor(ignore ...string) *Editor {
	ti := textinput.New()
	ti.CharLimit = charLimit
	ti.Prompt = ""
	ti.Focus()
	e := &Editor{input: ti, ignore: make(map[string]struct{}, len(ignore))}
	for _, k := range ignore {
		e.ignore[k] = struct{}{}
	}
	return e
}

// Ignores reports whether key is in the ignored set.
func (e *Editor) Ignores(key string) bool {
	_, ok := e.ignore[key]
	return ok
}

// Value returns the buffer contents.
func (e *Editor) Value() string { return e.input.Value() }

// Len returns the buffer length in runes.
func (e *Editor) Len() int { return len([]rune(e.input.Value())) }

// Empty reports whether the buffer holds no text.
func (e *Editor) Empty() bool { return e.input.Value() == "" }

// Cursor returns the rune offset of the cursor.
func (e *Editor) Cursor() int { return e.input.Position() }

// Insert places r at the cursor and advances it.
func (e *Editor) Insert(r rune) {
	e.InsertText(string(r))
}

// InsertText places text at the cursor and advances past it.
func (e *Editor) InsertText(text string) bool {
	if text == "" {
		return false
	}
	return e.apply(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// Backspace removes the rune before the cursor.
func (e *Editor) Backspace() bool { return e.apply(tea.KeyMsg{Type: tea.KeyBackspace}) }

// DeleteForward removes the rune under the cursor. The cursor stays put.
func (e *Editor) DeleteForward() bool { return e.apply(tea.KeyMsg{Type: tea.KeyDelete}) }

// DeleteWordBackward deletes the word preceding the cursor.
func (e *Editor) DeleteWordBackward() bool { return e.apply(tea.KeyMsg{Type: tea.KeyCtrlW}) }

// MoveLeft moves the cursor one rune backward.
func (e *Editor) MoveLeft() bool { return e.apply(tea.KeyMsg{Type: tea.KeyLeft}) }

// MoveRight moves the cursor one rune forward.
func (e *Editor) MoveRight() bool { return e.apply(tea.KeyMsg{Type: tea.KeyRight}) }

// MoveStart moves the cursor to the start of the buffer.
func (e *Editor) MoveStart() bool { return e.apply(tea.KeyMsg{Type: tea.KeyHome}) }

// MoveEnd moves the cursor past the last rune.
func (e *Editor) MoveEnd() bool { return e.apply(tea.KeyMsg{Type: tea.KeyEnd}) }

// Clear empties the buffer.
func (e *Editor) Clear() bool {
	if e.Empty() {
		return false
	}
	e.input.SetValue("")
	e.input.CursorStart()
	return true
}

// Take returns the buffer contents and resets the editor.
func (e *Editor) Take() string {
	value := e.input.Value()
	e.input.SetValue("")
	e.input.CursorStart()
	return value
}

// Set replaces the buffer and moves the cursor to the end.
func (e *Editor) Set(text string) {
	e.input.SetValue(text)
	e.input.CursorEnd()
}

// Update applies a key press. It returns false when the key was not
// consumed: keys in the ignored set and keys with no editing meaning are
// left for the caller.
func (e *Editor) Update(msg tea.KeyMsg) bool {
	if e.Ignores(msg.String()) || !e.editing(msg) {
		return false
	}
	if msg.Type == tea.KeySpace {
		e.Insert(' ')
		return true
	}
	e.apply(msg)
	return true
}

// editing reports whether msg is a printable key or one of the textinput
// editing bindings. Suggestion and paste bindings are not used.
func (e *Editor) editing(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeySpace:
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return true
	}
	km := e.input.KeyMap
	return key.Matches(msg,
		km.CharacterForward,
		km.CharacterBackward,
		km.WordForward,
		km.WordBackward,
		km.DeleteWordBackward,
		km.DeleteWordForward,
		km.DeleteAfterCursor,
		km.DeleteBeforeCursor,
		km.DeleteCharacterBackward,
		km.DeleteCharacterForward,
		km.LineStart,
		km.LineEnd,
	)
}

// apply runs msg through the textinput and reports whether the text or the
// cursor moved.
func (e *Editor) apply(msg tea.KeyMsg) bool {
	value, pos := e.input.Value(), e.input.Position()
	e.input, _ = e.input.Update(msg)
	return e.input.Value() != value || e.input.Position() != pos
}
