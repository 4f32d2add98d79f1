package app

import (
	"testing"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
)

func TestConfigOptions(t *testing.T) {
	cfg := Config{
		Width:         100,
		Height:        30,
		Keys:          tracker.Bindings{Add: []string{"n"}},
		Highlight:     "#112233",
		InitialWidth:  140,
		InitialHeight: 50,
	}
	opts := cfg.Options()
	if opts.Width != 100 || opts.Height != 30 || opts.Highlight != "#112233" {
		t.Fatalf("unexpected options %#v", opts)
	}
	if opts.InitialWidth != 140 || opts.InitialHeight != 50 {
		t.Fatalf("expected initial size to carry over, got %dx%d", opts.InitialWidth, opts.InitialHeight)
	}
	if len(opts.Bindings.Add) != 1 || opts.Bindings.Add[0] != "n" {
		t.Fatalf("expected bindings to carry over, got %#v", opts.Bindings)
	}
	if opts.Registry != nil {
		t.Fatalf("expected the model to create its own registry")
	}
}
