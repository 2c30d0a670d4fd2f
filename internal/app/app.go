package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/gridkit/internal/backend"
	"github.com/atomicstack/gridkit/internal/datagrid"
	"github.com/atomicstack/gridkit/internal/dataset"
	"github.com/atomicstack/gridkit/internal/logging/events"
	"github.com/atomicstack/gridkit/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width          int
	Height         int
	ShowFooter     bool
	Verbose        bool
	Page           string
	PageSize       int
	SearchMode     datagrid.SearchMode
	PruneSelection bool
	DataPath       string
	// Reload is the poll interval for DataPath; zero disables reloading.
	Reload time.Duration
}

// Provider resolves the dataset named by the configuration.
func Provider(cfg Config) (dataset.Provider, string, error) {
	if cfg.DataPath == "" {
		return dataset.Static(), "static", nil
	}
	p, err := dataset.LoadFile(cfg.DataPath)
	if err != nil {
		return nil, "", err
	}
	return p, cfg.DataPath, nil
}

// NewModel loads the dataset and builds the UI model for cfg. A non-nil watcher
// is attached to the model when cfg asks for reloading.
func NewModel(cfg Config, watcher *backend.Watcher) (*ui.Model, error) {
	provider, source, err := Provider(cfg)
	if err != nil {
		return nil, err
	}
	customers, err := provider.Customers()
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}
	trays, err := provider.Trays()
	if err != nil {
		return nil, fmt.Errorf("load trays: %w", err)
	}
	events.App.Dataset(source, len(customers), len(trays))
	return ui.NewModel(ui.Options{
		Width:          cfg.Width,
		Height:         cfg.Height,
		ShowFooter:     cfg.ShowFooter,
		Verbose:        cfg.Verbose,
		Page:           cfg.Page,
		PageSize:       cfg.PageSize,
		SearchMode:     cfg.SearchMode,
		PruneSelection: cfg.PruneSelection,
		Customers:      customers,
		Trays:          trays,
		Watcher:        watcher,
	}), nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	var watcher *backend.Watcher
	if cfg.DataPath != "" && cfg.Reload > 0 {
		watcher = backend.NewWatcher(dataset.Watch(cfg.DataPath), cfg.Reload)
		defer watcher.Stop()
	}
	model, err := NewModel(cfg, watcher)
	if err != nil {
		return err
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	events.App.Exit(err)
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
