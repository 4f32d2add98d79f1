package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Column describes one table column. Max caps the column width; zero
// means unbounded.
type Column struct {
	Title string
	Align Alignment
	Max   int
}

const (
	separator = "  "
	ellipsis  = "…"
)

// Format pads every cell to its column's widest entry, header included, and
// returns the header line followed by one line per row. Cells wider than
// the column cap are truncated with an ellipsis. Widths are measured in
// terminal cells, so styled text lines up.
func Format(columns []Column, rows [][]string) (string, []string) {
	if len(columns) == 0 {
		return "", nil
	}
	widths := make([]int, len(columns))
	for c, col := range columns {
		widths[c] = capped(cellWidth(col.Title), col.Max)
	}
	for _, row := range rows {
		for c := range columns {
			if width := capped(cellWidth(cell(row, c)), columns[c].Max); width > widths[c] {
				widths[c] = width
			}
		}
	}

	titles := make([]string, len(columns))
	for c, col := range columns {
		titles[c] = col.Title
	}
	header := formatRow(columns, widths, titles)
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = formatRow(columns, widths, row)
	}
	return header, out
}

func formatRow(columns []Column, widths []int, row []string) string {
	var b strings.Builder
	for c := range columns {
		if c > 0 {
			b.WriteString(separator)
		}
		text := cell(row, c)
		if cellWidth(text) > widths[c] {
			text = ansi.Truncate(text, widths[c], ellipsis)
		}
		pad := widths[c] - cellWidth(text)
		if columns[c].Align == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(text)
		} else {
			b.WriteString(text)
			writeSpaces(&b, pad)
		}
	}
	return b.String()
}

func cell(row []string, c int) string {
	if c < len(row) {
		return row[c]
	}
	return ""
}

func capped(width, max int) int {
	if max > 0 && width > max {
		return max
	}
	return width
}

func cellWidth(text string) int {
	return ansi.StringWidth(text)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
