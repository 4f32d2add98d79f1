package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// FormView is the renderable description of an active form.
type FormView struct {
	Title  string
	Fields []FieldView
	Hints  []string
	Input  InputView
}

// FieldView is one labelled row of a form.
type FieldView struct {
	Label  string
	Value  string
	Active bool
}

// InputView is the text field with its cursor position in runes.
type InputView struct {
	Text   string
	Cursor int
}

// fieldCycle tracks the focused field of a form, wrapping at both ends.
type fieldCycle struct {
	index int
	count int
}

func (c *fieldCycle) move(delta int) {
	if c.count <= 0 {
		c.index = 0
		return
	}
	c.index = ((c.index+delta)%c.count + c.count) % c.count
}

// parseNumber reads a numeric field. Anything that is not an integer
// counts as zero.
func parseNumber(text string) int {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0
	}
	return v
}

func optionalNumber(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func helpLine(b key.Binding, desc string) string {
	return fmt.Sprintf("%s: %s", b.Help().Key, desc)
}
