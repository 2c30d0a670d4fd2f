package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridkit/internal/datagrid"
	"github.com/atomicstack/gridkit/internal/dataset"
	"github.com/atomicstack/gridkit/internal/logging/events"
	"github.com/atomicstack/gridkit/internal/ui/command"
	uistate "github.com/atomicstack/gridkit/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

type dataRow = dataset.Customer

// tablePage is the customer management screen: a search prompt over the engine,
// with a focused column and filter for the sort, visibility and select bindings.
type tablePage struct {
	engine *datagrid.Engine[dataRow]
	search uistate.Prompt
	column int
	filter int
	cursor int
}

func newTablePage(opts Options) *tablePage {
	engine := datagrid.New(opts.Customers, dataset.CustomerColumns(), datagrid.Options[dataRow]{
		SearchMode:             opts.SearchMode,
		Filters:                dataset.CustomerFilters(),
		PageSize:               opts.PageSize,
		PruneSelectionOnFilter: opts.PruneSelection,
	})
	return &tablePage{engine: engine}
}

// focusedColumn returns the column the sort and visibility bindings act on.
func (t *tablePage) focusedColumn() (datagrid.Column[dataRow], bool) {
	cols := t.engine.Columns()
	if len(cols) == 0 {
		return datagrid.Column[dataRow]{}, false
	}
	return cols[uistate.Clamp(t.column, len(cols))], true
}

func (t *tablePage) focusedFilter() (datagrid.FilterSpec, bool) {
	specs := t.engine.Filters()
	if len(specs) == 0 {
		return datagrid.FilterSpec{}, false
	}
	return specs[uistate.Clamp(t.filter, len(specs))], true
}

// currentKey returns the key of the row under the cursor.
func (t *tablePage) currentKey() (string, bool) {
	view := t.engine.VisibleRows()
	if len(view.Keys) == 0 {
		return "", false
	}
	return view.Keys[uistate.Clamp(t.cursor, len(view.Keys))], true
}

func (t *tablePage) clampCursor() {
	t.cursor = uistate.Clamp(t.cursor, len(t.engine.VisibleRows().Keys))
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	if m.handleTextInput(msg) {
		return nil
	}
	t := m.table
	switch msg.String() {
	case "esc":
		m.closePage()
	case "up":
		t.cursor = max(t.cursor-1, 0)
	case "down":
		t.cursor++
		t.clampCursor()
	case "home":
		t.cursor = 0
	case "end":
		t.cursor = len(t.engine.VisibleRows().Keys) - 1
		t.clampCursor()
	case "pgdown":
		m.changeTablePage(t.engine.NextPage)
	case "pgup":
		m.changeTablePage(t.engine.PreviousPage)
	case "ctrl+n":
		m.focusTableColumn(1)
	case "ctrl+p":
		m.focusTableColumn(-1)
	case "ctrl+o":
		m.toggleTableSort()
	case "ctrl+v":
		m.toggleTableColumn()
	case "ctrl+f":
		m.cycleTableFilter()
	case "ctrl+g":
		if n := len(t.engine.Filters()); n > 0 {
			t.filter = (t.filter + 1) % n
		}
	case "ctrl+l":
		m.cycleTablePageSize()
	case "tab":
		m.toggleTableRow()
	case "shift+tab":
		m.toggleTablePage()
	case "ctrl+y":
		return m.copyTableSelection()
	}
	return nil
}

// editSearch edits the search prompt and pushes text changes into the engine.
func (m *Model) editSearch(edit func(*uistate.Prompt) bool) bool {
	t := m.table
	next := t.search
	if !edit(&next) {
		return false
	}
	textChanged := next.Text != t.search.Text
	t.search = next
	if textChanged && t.engine.SetSearchText(next.Text) {
		t.cursor = 0
		events.Table.Search(next.Text, t.engine.VisibleRows().TotalFiltered)
	}
	return true
}

func (m *Model) changeTablePage(step func() bool) {
	t := m.table
	if !step() {
		return
	}
	t.cursor = 0
	view := t.engine.VisibleRows()
	events.Table.Page(view.PageIndex, view.PageCount)
}

func (m *Model) focusTableColumn(delta int) {
	t := m.table
	n := len(t.engine.Columns())
	if n == 0 {
		return
	}
	t.column = ((t.column+delta)%n + n) % n
}

func (m *Model) toggleTableSort() {
	t := m.table
	col, ok := t.focusedColumn()
	if !ok {
		return
	}
	if !col.Sortable {
		m.errMsg = fmt.Sprintf("%s is not sortable", col.Title)
		return
	}
	if t.engine.ToggleSort(col.Key) {
		m.errMsg = ""
		s := t.engine.State().Sort
		events.Table.Sort(s.Column, string(s.Direction))
	}
}

func (m *Model) toggleTableColumn() {
	t := m.table
	col, ok := t.focusedColumn()
	if !ok {
		return
	}
	if !col.Hideable {
		m.errMsg = fmt.Sprintf("%s cannot be hidden", col.Title)
		return
	}
	visible := !t.engine.ColumnVisible(col.Key)
	if t.engine.SetColumnVisibility(col.Key, visible) {
		m.errMsg = ""
		events.Table.Visibility(col.Key, visible)
	}
}

func (m *Model) cycleTableFilter() {
	t := m.table
	spec, ok := t.focusedFilter()
	if !ok {
		return
	}
	next := spec.NextValue(t.engine.FilterValue(spec.Key))
	if t.engine.SetFilter(spec.Key, next) {
		t.cursor = 0
		events.Table.Filter(spec.Key, next, t.engine.VisibleRows().TotalFiltered)
	}
}

func (m *Model) cycleTablePageSize() {
	t := m.table
	if t.engine.Options().DisablePagination {
		return
	}
	size := t.engine.NextPageSize()
	if t.engine.SetPageSize(size) {
		t.cursor = 0
		events.Table.PageSize(size)
	}
}

func (m *Model) toggleTableRow() {
	t := m.table
	key, ok := t.currentKey()
	if !ok {
		return
	}
	if t.engine.ToggleRowSelection(key) {
		events.Table.Select(key, t.engine.State().IsSelected(key))
	}
}

func (m *Model) toggleTablePage() {
	t := m.table
	keys := t.engine.VisibleRows().Keys
	if len(keys) == 0 {
		return
	}
	if t.engine.ToggleSelectAllOnPage(keys) {
		selected, _ := t.engine.SelectionSummary()
		events.Table.SelectPage(keys, selected)
	}
}

func (m *Model) copyTableSelection() tea.Cmd {
	keys := m.table.engine.State().SelectedKeys()
	what := fmt.Sprintf("%d customer id(s)", len(keys))
	return m.bus.Execute(command.Copy("table:copy", what, strings.Join(keys, "\n")))
}
