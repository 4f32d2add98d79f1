package tracker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Bindings lists the keys that open each state from Home. Empty lists fall
// back to the defaults.
type Bindings struct {
	Add  []string `yaml:"add"`
	Roll []string `yaml:"roll"`
	Quit []string `yaml:"quit"`
}

// DefaultBindings returns the stock Home keys.
func DefaultBindings() Bindings {
	return Bindings{
		Add:  []string{"a"},
		Roll: []string{"r"},
		Quit: []string{"q", "ctrl+c"},
	}
}

// KeyMap holds every binding the states react to.
type KeyMap struct {
	Add    key.Binding
	Roll   key.Binding
	Quit   key.Binding
	Cancel key.Binding
	Enter  key.Binding
	Finish key.Binding
	Next   key.Binding
	Prev   key.Binding
	// NextRow, PrevRow and Remove act on table rows. They are never
	// printable, so a priority field can take any sign.
	NextRow key.Binding
	PrevRow key.Binding
	Remove  key.Binding
}

// DefaultKeyMap returns the key map built from DefaultBindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(DefaultBindings())
}

// NewKeyMap builds the key map, taking Home keys from b.
func NewKeyMap(b Bindings) KeyMap {
	def := DefaultBindings()
	return KeyMap{
		Add:  homeBinding(b.Add, def.Add, addDescription),
		Roll: homeBinding(b.Roll, def.Roll, rollDescription),
		Quit: homeBinding(b.Quit, def.Quit, quitDescription),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", homeDescription),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
		),
		// ctrl+enter reaches most terminals as ctrl+j
		Finish: key.NewBinding(
			key.WithKeys("ctrl+j", "ctrl+s"),
			key.WithHelp("ctrl+j", "finish"),
		),
		Next: key.NewBinding(
			key.WithKeys("+", "=", "down", "tab"),
			key.WithHelp("+ or =", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("-", "_", "up", "shift+tab"),
			key.WithHelp("- or _", "previous"),
		),
		NextRow: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("down or tab", "next row"),
		),
		PrevRow: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("up or shift+tab", "previous row"),
		),
		Remove: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove participant"),
		),
	}
}

// editorIgnores returns the navigation keys the text editor must leave alone.
func (k KeyMap) editorIgnores() []string {
	keys := make([]string, 0, 8)
	keys = append(keys, k.Next.Keys()...)
	keys = append(keys, k.Prev.Keys()...)
	return keys
}

func homeBinding(keys, fallback []string, desc string) key.Binding {
	cleaned := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			cleaned = append(cleaned, k)
		}
	}
	if len(cleaned) == 0 {
		cleaned = fallback
	}
	return key.NewBinding(
		key.WithKeys(cleaned...),
		key.WithHelp(cleaned[0], desc),
	)
}
