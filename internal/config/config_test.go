package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/app"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracker.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 || cfg.Logging.Trace || cfg.Logging.FilePath != "" {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if cfg.File != "" {
		t.Fatalf("expected no config file, got %q", cfg.File)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{envWidth + "=90", envHeight + "=20", envTrace + "=true", "IGNORED", "="}
	cfg, err := LoadArgs([]string{"-width", "120", "-log-file", "x.log"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 20 {
		t.Fatalf("expected flag width and env height, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "x.log" {
		t.Fatalf("unexpected logging %#v", cfg.Logging)
	}
	if cfg.Flags["width"] != "120" || cfg.Flags["logFile"] != "x.log" {
		t.Fatalf("unexpected flags %#v", cfg.Flags)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
	if _, err := LoadArgs([]string{"-bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestLoadArgsFileLayer(t *testing.T) {
	path := writeConfig(t, `
trace: true
log_file: from-file.log
width: 70
height: 22
highlight: "#224466"
keys:
  add: ["n"]
  quit: ["x", "ctrl+c"]
`)
	cfg, err := LoadArgs([]string{"-config", path}, []string{envHeight + "=40"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 70 || cfg.App.Height != 40 {
		t.Fatalf("expected file width and env height, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "from-file.log" {
		t.Fatalf("expected logging from file, got %#v", cfg.Logging)
	}
	if cfg.App.Highlight != "#224466" || cfg.App.Keys.Add[0] != "n" || cfg.App.Keys.Roll != nil {
		t.Fatalf("unexpected app config %#v", cfg.App)
	}
	if cfg.File != path {
		t.Fatalf("expected file path recorded, got %q", cfg.File)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestLoadArgsConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "trace: false\n")
	cfg, err := LoadArgs([]string{"-trace"}, []string{envConfig + "=" + path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected flag to beat the file")
	}
}

func TestLoadArgsFileErrors(t *testing.T) {
	if _, err := LoadArgs([]string{"-config", filepath.Join(t.TempDir(), "missing.yaml")}, nil); err == nil {
		t.Fatalf("expected error for missing file")
	}
	path := writeConfig(t, "colour: red\n")
	_, err := LoadArgs([]string{"-config", path}, nil)
	if err == nil || !strings.Contains(err.Error(), "decode config file") {
		t.Fatalf("expected unknown field error, got %v", err)
	}
	empty := writeConfig(t, "")
	if _, err := LoadArgs([]string{"-config", empty}, nil); err != nil {
		t.Fatalf("expected empty file to load, got %v", err)
	}
}

func TestValidateKeys(t *testing.T) {
	cases := []struct {
		name    string
		keys    tracker.Bindings
		wantErr string
	}{
		{name: "defaults"},
		{name: "rebound", keys: tracker.Bindings{Add: []string{"n"}, Roll: []string{"i"}}},
		{name: "empty list", keys: tracker.Bindings{Roll: []string{" "}}, wantErr: "keys.roll"},
		{name: "clash with default", keys: tracker.Bindings{Add: []string{"q"}}, wantErr: `"q"`},
		{name: "clash between lists", keys: tracker.Bindings{Add: []string{"z"}, Roll: []string{"z"}}, wantErr: "add and roll"},
	}
	for _, tc := range cases {
		err := Validate(Config{App: app.Config{Keys: tc.keys}})
		if tc.wantErr == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
			t.Fatalf("%s: expected error containing %q, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestValidateDimensions(t *testing.T) {
	if err := Validate(Config{App: app.Config{Width: -1}}); err == nil {
		t.Fatalf("expected width error")
	}
	if err := Validate(Config{App: app.Config{Height: -1}}); err == nil {
		t.Fatalf("expected height error")
	}
}
