package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridkit/internal/logging/events"
	"github.com/atomicstack/gridkit/internal/tray"
	"github.com/atomicstack/gridkit/internal/ui/command"
	uistate "github.com/atomicstack/gridkit/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// traysPage holds the well selection screen. The cursor is a tray index plus a
// zero-based row and column index inside that tray.
type traysPage struct {
	trays     []tray.Tray
	selection tray.Selection
	filters   tray.FilterPanel
	tray      int
	row       int
	col       int
	// field is the free-text filter being edited through input, empty when none.
	field string
	input uistate.Prompt
}

func newTraysPage(trays []tray.Tray) *traysPage {
	return &traysPage{trays: trays, selection: tray.NewSelection()}
}

func (p *traysPage) current() (tray.Tray, bool) {
	if len(p.trays) == 0 {
		return tray.Tray{}, false
	}
	return p.trays[uistate.Clamp(p.tray, len(p.trays))], true
}

// currentWell returns the well under the cursor; positions without a well report false.
func (p *traysPage) currentWell() (tray.Well, bool) {
	t, ok := p.current()
	if !ok || len(t.Columns) == 0 {
		return tray.Well{}, false
	}
	return t.Cell(p.row+1, t.Columns[uistate.Clamp(p.col, len(t.Columns))])
}

func (p *traysPage) clampCursor() {
	t, ok := p.current()
	if !ok {
		p.tray, p.row, p.col = 0, 0, 0
		return
	}
	p.tray = uistate.Clamp(p.tray, len(p.trays))
	p.row = uistate.Clamp(p.row, t.Rows)
	p.col = uistate.Clamp(p.col, len(t.Columns))
}

func (m *Model) handleTraysKey(msg tea.KeyMsg) tea.Cmd {
	if m.trays.field != "" {
		switch msg.String() {
		case "enter", "esc":
			m.finishTrayField()
		default:
			m.handleTextInput(msg)
		}
		return nil
	}
	switch msg.String() {
	case "esc":
		m.closePage()
	case "up", "k":
		m.moveWell(-1, 0)
	case "down", "j":
		m.moveWell(1, 0)
	case "left", "h":
		m.moveWell(0, -1)
	case "right", "l":
		m.moveWell(0, 1)
	case "n", "tab":
		m.switchTray(1)
	case "p", "shift+tab":
		m.switchTray(-1)
	case " ":
		m.toggleWell()
	case "a":
		m.toggleSelectAll()
	case "c":
		m.clearWellSelection()
	case "s":
		m.cycleTrayFilter(tray.FilterStatus)
	case "o":
		m.cycleTrayFilter(tray.FilterSource)
	case "d":
		m.cycleTrayFilter(tray.FilterDestination)
	case "t":
		m.beginTrayField(tray.FilterSampleType)
	case "e":
		m.beginTrayField(tray.FilterTest)
	case "x":
		m.clearTrayFilters()
	case "enter":
		return m.applyTrayFilters()
	case "y":
		return m.copyWellSelection()
	}
	return nil
}

func (m *Model) moveWell(dRow, dCol int) {
	p := m.trays
	t, ok := p.current()
	if !ok || len(t.Columns) == 0 {
		return
	}
	row, col := p.row, p.col
	p.row += dRow
	p.col += dCol
	p.clampCursor()
	if p.row != row || p.col != col {
		events.Tray.Cursor(t.ID, p.row+1, t.Columns[p.col])
	}
}

func (m *Model) switchTray(delta int) {
	p := m.trays
	n := len(p.trays)
	if n < 2 {
		return
	}
	p.tray = ((p.tray+delta)%n + n) % n
	p.clampCursor()
	t, _ := p.current()
	if len(t.Columns) > 0 {
		events.Tray.Cursor(t.ID, p.row+1, t.Columns[p.col])
	}
}

func (m *Model) toggleWell() {
	p := m.trays
	well, ok := p.currentWell()
	if !ok {
		return
	}
	p.selection.Toggle(well.ID)
	events.Tray.Toggle(well.ID, p.selection.IsSelected(well.ID))
}

func (m *Model) toggleSelectAll() {
	p := m.trays
	checked := !p.selection.IsSelectAllChecked(p.trays)
	p.selection.SetSelectAll(checked, p.trays)
	events.Tray.SelectAll(checked, p.selection.Len())
}

func (m *Model) clearWellSelection() {
	p := m.trays
	if p.selection.Len() == 0 {
		return
	}
	p.selection.Clear()
	events.Tray.SelectAll(false, 0)
}

func (m *Model) cycleTrayFilter(key string) {
	value, ok := m.trays.filters.Cycle(key)
	if !ok {
		return
	}
	events.Tray.Filter(key, value)
}

// beginTrayField focuses a free-text filter; typed text updates the panel live.
func (m *Model) beginTrayField(key string) {
	p := m.trays
	value := p.filters.Get(key)
	p.field = key
	p.input.Set(value, len([]rune(value)))
	m.filterCursorDirty = true
}

func (m *Model) editTrayField(edit func(*uistate.Prompt) bool) bool {
	p := m.trays
	if p.field == "" || !edit(&p.input) {
		return false
	}
	p.filters.Set(p.field, strings.TrimSpace(p.input.Text))
	return true
}

func (m *Model) finishTrayField() {
	p := m.trays
	events.Tray.Filter(p.field, p.filters.Get(p.field))
	p.field = ""
	p.input = uistate.Prompt{}
}

func (m *Model) clearTrayFilters() {
	if len(m.trays.filters.Active()) == 0 {
		return
	}
	m.trays.filters.Clear()
	events.Tray.FilterClear()
}

// applyTrayFilters submits the filter panel. Submission only records the choice.
func (m *Model) applyTrayFilters() tea.Cmd {
	panel := m.trays.filters
	return m.bus.Execute(command.Request{
		ID:    "trays:apply",
		Label: "apply filters",
		Action: func() command.Result {
			active := panel.Active()
			values := make(map[string]string, len(active))
			for _, f := range active {
				values[f.Key] = panel.Get(f.Key)
			}
			events.Tray.Apply(values)
			return command.Result{Info: fmt.Sprintf("Applied %d filter(s)", len(active))}
		},
	})
}

func (m *Model) copyWellSelection() tea.Cmd {
	ids := m.trays.selection.IDs()
	what := fmt.Sprintf("%d well id(s)", len(ids))
	return m.bus.Execute(command.Copy("trays:copy", what, strings.Join(ids, "\n")))
}
