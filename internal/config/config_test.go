package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/gridkit/internal/datagrid"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PageSize != datagrid.DefaultPageSize {
		t.Fatalf("expected default page size, got %d", cfg.App.PageSize)
	}
	if cfg.App.SearchMode != datagrid.SearchSubstring {
		t.Fatalf("expected substring search, got %q", cfg.App.SearchMode)
	}
	if cfg.File != "" || cfg.App.Page != "" || cfg.Logging.Trace {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadArgsPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridkit.yaml")
	body := "page-size: 30\nsearch-mode: fold\nwidth: 100\nfooter: true\npage: trays\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	env := []string{
		"GRIDKIT_CONFIG=" + path,
		"GRIDKIT_PAGE_SIZE=40",
		"GRIDKIT_WIDTH=",
		"GRIDKIT_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"--page-size", "50", "--search-mode=fuzzy"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PageSize != 50 {
		t.Fatalf("expected flag to win, got %d", cfg.App.PageSize)
	}
	if cfg.App.SearchMode != datagrid.SearchFuzzy {
		t.Fatalf("expected fuzzy from flag, got %q", cfg.App.SearchMode)
	}
	if cfg.App.Width != 100 || !cfg.App.ShowFooter || cfg.App.Page != "trays" {
		t.Fatalf("expected file values, got %+v", cfg.App)
	}
	if !cfg.Logging.Trace {
		t.Fatal("expected trace from env")
	}
	if cfg.File != path || cfg.Flags["config"] != path {
		t.Fatalf("expected config file recorded, got %q", cfg.File)
	}

	cfg, err = LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PageSize != 40 {
		t.Fatalf("expected env to beat file, got %d", cfg.App.PageSize)
	}
	if cfg.App.SearchMode != datagrid.SearchFold {
		t.Fatalf("expected fold from file, got %q", cfg.App.SearchMode)
	}
}

func TestConfigFlagOverridesEnvPath(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.toml")
	if err := os.WriteFile(flagPath, []byte("page-size = 20\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	env := []string{"GRIDKIT_CONFIG=" + filepath.Join(dir, "missing.yaml")}
	cfg, err := LoadArgs([]string{"-config", flagPath}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.PageSize != 20 {
		t.Fatalf("expected toml value, got %d", cfg.App.PageSize)
	}
}

func TestLoadArgsErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string][]string{
		"negative width":  {"--width", "-1"},
		"zero page size":  {"--page-size", "0"},
		"negative reload": {"--reload", "-1s"},
		"bad mode":        {"--search-mode", "regex"},
		"unknown flag":    {"--socket", "x"},
		"missing config":  {"--config", filepath.Join(dir, "nope.yaml")},
	}
	for name, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestEnvFallbacksIgnoreGarbage(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"GRIDKIT_HEIGHT=tall", "GRIDKIT_FOOTER=maybe", "NOEQUALS"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected garbage env ignored, got %+v", cfg.App)
	}
}

func TestReloadInterval(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Reload != 2*time.Second || cfg.Flags["reload"] != "2s" {
		t.Fatalf("expected 2s default reload, got %v / %q", cfg.App.Reload, cfg.Flags["reload"])
	}
	cfg, err = LoadArgs(nil, []string{"GRIDKIT_RELOAD=500ms"})
	if err != nil || cfg.App.Reload != 500*time.Millisecond {
		t.Fatalf("expected env reload 500ms, got %v (%v)", cfg.App.Reload, err)
	}
	cfg, err = LoadArgs([]string{"--reload=0"}, []string{"GRIDKIT_RELOAD=soon"})
	if err != nil || cfg.App.Reload != 0 {
		t.Fatalf("expected flag to disable reload, got %v (%v)", cfg.App.Reload, err)
	}
}

func TestValidate(t *testing.T) {
	cfg, _ := LoadArgs([]string{"--page", "table"}, nil)
	if err := Validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, _ = LoadArgs([]string{"--page", "charts"}, nil)
	err := Validate(cfg)
	if err == nil || !strings.Contains(err.Error(), "unknown page") {
		t.Fatalf("expected unknown page error, got %v", err)
	}
}
