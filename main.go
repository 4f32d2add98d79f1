package main

import (
	"fmt"
	"os"

	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/app"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/config"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging"
	"github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	cfg := config.MustLoad()
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	terminal := systemTerminal.detect(standardStreams())
	cfg.App = withTerminalSize(cfg.App, terminal)
	events.App.Start(startupPayload(cfg, terminal))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type stream struct {
	name string
	fd   int
}

func standardStreams() []stream {
	return []stream{
		{"stdout", int(os.Stdout.Fd())},
		{"stdin", int(os.Stdin.Fd())},
		{"stderr", int(os.Stderr.Fd())},
	}
}

// terminal abstracts the x/term calls so tests can fake a TTY.
type terminal struct {
	isTerminal func(fd int) bool
	getSize    func(fd int) (int, int, error)
}

var systemTerminal = terminal{isTerminal: term.IsTerminal, getSize: term.GetSize}

type streamInfo struct {
	Stream     string `json:"stream"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// terminalInfo records every stream and the first usable size, if any.
type terminalInfo struct {
	Size    *streamInfo  `json:"size,omitempty"`
	Streams []streamInfo `json:"streams"`
}

func (t terminal) detect(streams []stream) terminalInfo {
	info := terminalInfo{Streams: make([]streamInfo, 0, len(streams))}
	for _, s := range streams {
		p := streamInfo{Stream: s.name}
		if s.fd >= 0 && t.isTerminal(s.fd) {
			p.IsTerminal = true
			if w, h, err := t.getSize(s.fd); err != nil {
				p.Error = err.Error()
			} else {
				p.Width, p.Height = w, h
			}
		}
		info.Streams = append(info.Streams, p)
		if info.Size == nil && p.Width > 0 && p.Height > 0 {
			sized := p
			info.Size = &sized
		}
	}
	return info
}

// withTerminalSize seeds the first frame from the detected terminal. Sizes
// set by flag, env or config file stay pinned in the UI regardless.
func withTerminalSize(cfg app.Config, info terminalInfo) app.Config {
	if info.Size == nil {
		return cfg
	}
	if cfg.Width == 0 {
		cfg.InitialWidth = info.Size.Width
	}
	if cfg.Height == 0 {
		cfg.InitialHeight = info.Size.Height
	}
	return cfg
}

func startupPayload(cfg config.Config, info terminalInfo) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":      cfg.Args,
		"flags":     cfg.Flags,
		"trace":     cfg.Logging.Trace,
		"logFile":   logging.Path(),
		"keys":      cfg.App.Keys,
		"highlight": cfg.App.Highlight,
		"size": map[string]int{
			"width":         cfg.App.Width,
			"height":        cfg.App.Height,
			"initialWidth":  cfg.App.InitialWidth,
			"initialHeight": cfg.App.InitialHeight,
		},
		"terminal": info,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	return payload
}
