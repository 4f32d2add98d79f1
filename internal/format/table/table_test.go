package table

import (
	"strings"
	"testing"
)

func TestFormatPadsToWidestCell(t *testing.T) {
	columns := []Column{
		{Title: "Priority", Align: AlignRight},
		{Title: "Name"},
	}
	header, lines := Format(columns, [][]string{
		{"15", "Aria"},
		{"?", "Goblin Boss"},
	})
	if header != "Priority  Name       " {
		t.Fatalf("unexpected header %q", header)
	}
	if lines[0] != "      15  Aria       " {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "       ?  Goblin Boss" {
		t.Fatalf("unexpected second line %q", lines[1])
	}
}

func TestFormatTruncatesToColumnMax(t *testing.T) {
	columns := []Column{{Title: "Name", Max: 6}}
	_, lines := Format(columns, [][]string{{"Goblin Boss"}})
	if cellWidth(lines[0]) != 6 || !strings.HasSuffix(lines[0], "…") {
		t.Fatalf("expected truncated cell, got %q", lines[0])
	}
}

func TestFormatMeasuresStyledText(t *testing.T) {
	columns := []Column{{Title: "Actions"}, {Title: "X"}}
	styled := "\x1b[32mM\x1b[0m/A"
	_, lines := Format(columns, [][]string{{styled, "1"}})
	if cellWidth(lines[0]) != len("Actions")+2+1 {
		t.Fatalf("expected escape codes to take no width, got %d for %q", cellWidth(lines[0]), lines[0])
	}
}

func TestFormatShortRowsAndNoColumns(t *testing.T) {
	header, lines := Format(nil, [][]string{{"x"}})
	if header != "" || lines != nil {
		t.Fatalf("expected nothing without columns")
	}
	_, lines = Format([]Column{{Title: "A"}, {Title: "B"}}, [][]string{{"1"}})
	if lines[0] != "1   " {
		t.Fatalf("expected missing cells padded, got %q", lines[0])
	}
}
