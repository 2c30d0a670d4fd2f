package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/gridkit/internal/app"
	"github.com/atomicstack/gridkit/internal/config"
	"github.com/atomicstack/gridkit/internal/logging"
	"github.com/atomicstack/gridkit/internal/logging/events"
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

	events.App.Start(startupTracePayload(cfg))

	if err := app.Run(cfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles the resolved configuration with terminal details.
func startupTracePayload(cfg config.Config) map[string]any {
	flags := make(map[string]any, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	dataset := "static"
	if cfg.App.DataPath != "" {
		dataset = cfg.App.DataPath
	}
	payload := map[string]any{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"dataset": dataset,
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = probeTerminal()
	return payload
}

type terminalInfo struct {
	Size   *terminalSize   `json:"size,omitempty"`
	Probes []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Error      string `json:"error,omitempty"`
}

// probeTerminal reports which standard descriptors are terminals. The first one
// with a readable size is what the grid will lay out against when no width is set.
func probeTerminal() terminalInfo {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	info := terminalInfo{Probes: make([]terminalProbe, 0, len(files))}
	for i, f := range files {
		probe := terminalProbe{Name: names[i]}
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			case info.Size == nil:
				info.Size = &terminalSize{Source: names[i], Width: width, Height: height}
			}
		}
		info.Probes = append(info.Probes, probe)
	}
	return info
}
