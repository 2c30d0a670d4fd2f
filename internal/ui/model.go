package ui

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/gridkit/internal/backend"
	"github.com/atomicstack/gridkit/internal/catalog"
	"github.com/atomicstack/gridkit/internal/data/dispatcher"
	"github.com/atomicstack/gridkit/internal/datagrid"
	"github.com/atomicstack/gridkit/internal/dataset"
	"github.com/atomicstack/gridkit/internal/logging/events"
	"github.com/atomicstack/gridkit/internal/state"
	"github.com/atomicstack/gridkit/internal/theme"
	"github.com/atomicstack/gridkit/internal/tray"
	"github.com/atomicstack/gridkit/internal/ui/command"
	uistate "github.com/atomicstack/gridkit/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

type Mode int

const (
	ModeCatalog Mode = iota
	ModeTable
	ModeTrays
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width          int
	Height         int
	ShowFooter     bool
	Verbose        bool
	Page           string
	PageSize       int
	SearchMode     datagrid.SearchMode
	PruneSelection bool
	Customers      []dataset.Customer
	Trays          []tray.Tray
	// Watcher, when set, streams reloaded data into the pages.
	Watcher *backend.Watcher
}

// Model implements the Bubble Tea model for the page catalog and its pages.
type Model struct {
	catalog  *level
	registry *catalog.Registry
	table    *tablePage
	trays    *traysPage

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool
	focused           bool

	handlers map[reflect.Type]msgHandler

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher
	customers      state.CustomerStore
	trayStore      state.TrayStore

	bus  *command.Bus
	mode Mode
}

// NewModel initialises the UI state with the catalog menu and the page data.
func NewModel(opts Options) *Model {
	registry := catalog.Default()
	pages := registry.Pages()
	items := make([]uistate.Item, 0, len(pages))
	for _, p := range pages {
		items = append(items, uistate.Item{ID: p.ID, Label: p.Label()})
	}
	m := &Model{
		catalog:    uistate.NewLevel(catalog.RootID, "Home", items),
		registry:   registry,
		table:      newTablePage(opts),
		trays:      newTraysPage(opts.Trays),
		backend:    opts.Watcher,
		customers:  state.NewCustomerStore(opts.Customers),
		trayStore:  state.NewTrayStore(opts.Trays),
		bus:        command.New(),
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		mode:       ModeCatalog,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.dispatcher = dispatcher.New(m.customers, m.trayStore)
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		c.TextStyle = *styles.Filter
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.applyPageOverride(opts.Page)
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	m.focused = true
	cmds := []tea.Cmd{m.filterCursor.Focus()}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(command.Result{}):    m.handleCommandResult,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if m.focused {
			if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Mode reports which screen is active.
func (m *Model) Mode() Mode {
	return m.mode
}

// applyPageOverride opens the requested page instead of the catalog.
func (m *Model) applyPageOverride(requested string) {
	id := strings.ToLower(strings.TrimSpace(requested))
	if id == "" || id == catalog.RootID {
		return
	}
	if _, ok := m.registry.Find(id); !ok {
		m.errMsg = fmt.Sprintf("Unknown page %q", requested)
		return
	}
	m.openPage(id)
}

// openPage switches to the page with id.
func (m *Model) openPage(id string) bool {
	page, ok := m.registry.Find(id)
	if !ok {
		return false
	}
	switch page.ID {
	case catalog.TableID:
		m.mode = ModeTable
	case catalog.TraysID:
		m.mode = ModeTrays
	default:
		return false
	}
	if idx := m.catalog.IndexOf(page.ID); idx >= 0 {
		m.catalog.LastCursor = idx
	}
	m.errMsg = ""
	m.forceClearInfo()
	events.UI.PageEnter(page.ID, page.Title, m.catalog.Filter.Text)
	return true
}

// closePage returns to the catalog, restoring the cursor on the page just left.
func (m *Model) closePage() {
	id := m.pageID()
	m.mode = ModeCatalog
	if idx := m.catalog.IndexOf(id); idx >= 0 {
		m.catalog.Cursor = idx
	}
	m.catalog.LastCursor = -1
	m.errMsg = ""
	m.forceClearInfo()
	m.syncViewport()
	events.UI.PageLeave(id)
}

func (m *Model) pageID() string {
	switch m.mode {
	case ModeTable:
		return catalog.TableID
	case ModeTrays:
		return catalog.TraysID
	default:
		return catalog.RootID
	}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	m.syncViewport()
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

func (m *Model) clearMessages() {
	m.errMsg = ""
	m.forceClearInfo()
}
