package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/app"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/tracker"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the path of the YAML file that was loaded, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envWidth   = "INITIATIVE_WIDTH"
	envHeight  = "INITIATIVE_HEIGHT"
	envTrace   = "INITIATIVE_TRACE"
	envLogFile = "INITIATIVE_LOG_FILE"
	envConfig  = "INITIATIVE_CONFIG"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Values resolve
// as flag, then environment, then config file, then default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("initiative-tracker", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	configPath := fs.String("config", envOrDefault(env, envConfig, ""), "path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	explicit := func(name, envKey string) bool {
		return set[name] || hasEnv(env, envKey)
	}

	var keys tracker.Bindings
	var highlight string
	if path := strings.TrimSpace(*configPath); path != "" {
		file, err := LoadFile(path)
		if err != nil {
			return Config{}, err
		}
		if file.Width != nil && !explicit("width", envWidth) {
			*width = *file.Width
		}
		if file.Height != nil && !explicit("height", envHeight) {
			*height = *file.Height
		}
		if file.Trace != nil && !explicit("trace", envTrace) {
			*trace = *file.Trace
		}
		if file.LogFile != "" && !explicit("log-file", envLogFile) {
			*logFile = file.LogFile
		}
		keys = file.Keys
		highlight = file.Highlight
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:     *width,
			Height:    *height,
			Keys:      keys,
			Highlight: highlight,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: strings.TrimSpace(*configPath),
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"config":  *configPath,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func hasEnv(env map[string]string, key string) bool {
	return strings.TrimSpace(env[key]) != ""
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks dimensions and key bindings. A configured key list must
// name at least one key, and no key may open two different states from
// home.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	defaults := tracker.DefaultBindings()
	lists := []struct {
		name     string
		keys     []string
		fallback []string
	}{
		{"add", cfg.App.Keys.Add, defaults.Add},
		{"roll", cfg.App.Keys.Roll, defaults.Roll},
		{"quit", cfg.App.Keys.Quit, defaults.Quit},
	}
	owner := map[string]string{}
	for _, list := range lists {
		keys := list.fallback
		if list.keys != nil {
			keys = trimKeys(list.keys)
			if len(keys) == 0 {
				return fmt.Errorf("keys.%s must list at least one key", list.name)
			}
		}
		for _, k := range keys {
			if prev, ok := owner[k]; ok && prev != list.name {
				return fmt.Errorf("key %q is bound to both %s and %s", k, prev, list.name)
			}
			owner[k] = list.name
		}
	}
	return nil
}

func trimKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
