package main

import (
	"testing"

	"github.com/atomicstack/gridkit/internal/app"
	"github.com/atomicstack/gridkit/internal/config"
	"github.com/atomicstack/gridkit/internal/datagrid"
)

func TestProbeTerminalCoversStandardDescriptors(t *testing.T) {
	info := probeTerminal()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayload(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Page:       "table",
			PageSize:   20,
			SearchMode: datagrid.SearchFuzzy,
			DataPath:   "demo.yaml",
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		File:    "gridkit.yaml",
		Flags: map[string]string{
			"width":      "80",
			"page":       "table",
			"searchMode": "fuzzy",
		},
		Args: []string{"--page", "table"},
	}

	payload := startupTracePayload(cfg)

	flags, ok := payload["flags"].(map[string]any)
	if !ok {
		t.Fatal("expected flags map in payload")
	}
	if flags["width"] != "80" || flags["page"] != "table" || flags["searchMode"] != "fuzzy" {
		t.Fatalf("expected parsed flags copied, got %v", flags)
	}
	if flags["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flags["trace"])
	}
	if flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flags["logFile"])
	}
	if payload["dataset"] != "demo.yaml" {
		t.Fatalf("expected dataset path, got %v", payload["dataset"])
	}
	if payload["configFile"] != "gridkit.yaml" {
		t.Fatalf("expected config file, got %v", payload["configFile"])
	}
	if _, ok := payload["tty"].(terminalInfo); !ok {
		t.Fatal("expected terminal details in payload")
	}
	if got, ok := payload["config"].(config.Config); !ok || got.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, payload["config"])
	}
}

func TestStartupTracePayloadDefaultsToStaticData(t *testing.T) {
	payload := startupTracePayload(config.Config{})
	if payload["dataset"] != "static" {
		t.Fatalf("expected static dataset, got %v", payload["dataset"])
	}
	if _, ok := payload["configFile"]; ok {
		t.Fatal("expected no config file entry")
	}
}
