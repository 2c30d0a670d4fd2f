package datagrid

import (
	"slices"
	"strconv"
)

const DefaultPageSize = 10

// DefaultPageSizeOptions mirrors the rows-per-page choices offered by the table page.
var DefaultPageSizeOptions = []int{10, 20, 30, 40, 50}

// Identifier lets a row type supply its own key.
type Identifier interface {
	RowID() string
}

// Options configures an Engine.
type Options[T any] struct {
	// Key extracts the row key. When nil, rows implementing Identifier use RowID
	// and everything else is keyed by position.
	Key          func(T) string
	SearchColumn string
	SearchMode   SearchMode
	Filters      []FilterSpec
	PageSize     int
	// PageSizeOptions lists the sizes a view may cycle through.
	PageSizeOptions   []int
	DisablePagination bool
	// PruneSelectionOnFilter drops selected keys that no longer pass search and
	// filters. Off by default: selection survives filtering.
	PruneSelectionOnFilter bool
}

// Engine derives a searched, filtered, sorted and paginated window over rows.
// It is not safe for concurrent use; each view owns its engine.
type Engine[T any] struct {
	rows    []T
	keys    []string
	columns []Column[T]
	index   map[string]int
	opts    Options[T]
	state   State
	version int
	cache   memo[T]
}

// New builds an engine over rows. The rows slice is copied; row values are never modified.
func New[T any](rows []T, columns []Column[T], opts Options[T]) *Engine[T] {
	if opts.SearchMode == "" {
		opts.SearchMode = SearchSubstring
	}
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if len(opts.PageSizeOptions) == 0 {
		opts.PageSizeOptions = slices.Clone(DefaultPageSizeOptions)
	}
	e := &Engine[T]{
		columns: slices.Clone(columns),
		index:   make(map[string]int, len(columns)),
		opts:    opts,
		state:   State{Page: Page{Size: opts.PageSize}},
	}
	for i, col := range e.columns {
		e.index[col.Key] = i
	}
	if e.opts.SearchColumn == "" {
		for _, col := range e.columns {
			if col.Value != nil {
				e.opts.SearchColumn = col.Key
				break
			}
		}
	}
	e.SetRows(rows)
	return e
}

// SetRows replaces the row source, keeping state. Selection is pruned only when the
// engine is configured to prune; the page index is clamped to the new row count.
func (e *Engine[T]) SetRows(rows []T) {
	e.rows = slices.Clone(rows)
	e.keys = make([]string, len(e.rows))
	for i, row := range e.rows {
		e.keys[i] = e.keyFor(row, i)
	}
	e.version++
	next := e.state.Clone()
	e.pruneSelection(&next)
	next.Page.Index = clampPage(next.Page.Index, e.pageCount(next))
	e.state = next
}

func (e *Engine[T]) keyFor(row T, i int) string {
	if e.opts.Key != nil {
		return e.opts.Key(row)
	}
	if id, ok := any(row).(Identifier); ok {
		return id.RowID()
	}
	return strconv.Itoa(i)
}

// Rows returns the unfiltered rows.
func (e *Engine[T]) Rows() []T {
	return slices.Clone(e.rows)
}

// Columns returns every declared column.
func (e *Engine[T]) Columns() []Column[T] {
	return slices.Clone(e.columns)
}

// Column looks up a column by key.
func (e *Engine[T]) Column(key string) (Column[T], bool) {
	i, ok := e.index[key]
	if !ok {
		return Column[T]{}, false
	}
	return e.columns[i], true
}

// VisibleColumns returns the columns that are not hidden, in declared order.
func (e *Engine[T]) VisibleColumns() []Column[T] {
	out := make([]Column[T], 0, len(e.columns))
	for _, col := range e.columns {
		if !e.state.Hidden[col.Key] {
			out = append(out, col)
		}
	}
	return out
}

// ColumnVisible reports whether the column is rendered.
func (e *Engine[T]) ColumnVisible(key string) bool {
	_, ok := e.index[key]
	return ok && !e.state.Hidden[key]
}

// Options returns the engine configuration after defaults were applied.
func (e *Engine[T]) Options() Options[T] {
	return e.opts
}

// Filters returns the declared filter specs.
func (e *Engine[T]) Filters() []FilterSpec {
	return slices.Clone(e.opts.Filters)
}

// FilterValue returns the first accepted value for key, or AllValue when unconstrained.
func (e *Engine[T]) FilterValue(key string) string {
	values := e.state.Filters[key]
	if len(values) == 0 {
		return AllValue
	}
	return values[0]
}

// State returns a copy of the current state.
func (e *Engine[T]) State() State {
	return e.state.Clone()
}

// SetState replaces the current state, normalising the page window.
func (e *Engine[T]) SetState(s State) {
	next := s.Clone()
	if next.Page.Size <= 0 {
		next.Page.Size = e.opts.PageSize
	}
	next.Page.Index = clampPage(next.Page.Index, e.pageCount(next))
	e.state = next
}

// Dispatch applies action to the engine state and reports whether it changed.
func (e *Engine[T]) Dispatch(action Action) bool {
	next := e.Next(e.state, action)
	if next.Equal(e.state) {
		return false
	}
	e.state = next
	return true
}

// SetSearchText replaces the search string.
func (e *Engine[T]) SetSearchText(text string) bool {
	return e.Dispatch(SetSearch{Text: text})
}

// SetFilter constrains key to values; no values or the "all" sentinel clears it.
func (e *Engine[T]) SetFilter(key string, values ...string) bool {
	return e.Dispatch(SetFilter{Key: key, Values: values})
}

// ToggleSort cycles the sort on column through asc, desc and none.
func (e *Engine[T]) ToggleSort(column string) bool {
	return e.Dispatch(ToggleSort{Column: column})
}

// SetColumnVisibility shows or hides a hideable column.
func (e *Engine[T]) SetColumnVisibility(key string, visible bool) bool {
	return e.Dispatch(SetColumnVisibility{Key: key, Visible: visible})
}

// ToggleRowSelection flips the selection of a single row key.
func (e *Engine[T]) ToggleRowSelection(key string) bool {
	return e.Dispatch(ToggleRow{Key: key})
}

// ToggleSelectAllOnPage selects keys, or deselects them when all are already selected.
func (e *Engine[T]) ToggleSelectAllOnPage(keys []string) bool {
	return e.Dispatch(TogglePage{Keys: keys})
}

// SelectAllOnPage toggles the keys of the current page window.
func (e *Engine[T]) SelectAllOnPage() bool {
	return e.ToggleSelectAllOnPage(e.VisibleRows().Keys)
}

// ClearSelection drops every selected key.
func (e *Engine[T]) ClearSelection() bool {
	return e.Dispatch(ClearSelection{})
}

// SetPage moves to index, clamped to the available pages.
func (e *Engine[T]) SetPage(index int) bool {
	return e.Dispatch(SetPage{Index: index})
}

// SetPageSize changes the page size and returns to the first page.
func (e *Engine[T]) SetPageSize(size int) bool {
	return e.Dispatch(SetPageSize{Size: size})
}

// NextPage advances one page when possible.
func (e *Engine[T]) NextPage() bool {
	if !e.CanNextPage() {
		return false
	}
	return e.SetPage(e.state.Page.Index + 1)
}

// PreviousPage moves back one page when possible.
func (e *Engine[T]) PreviousPage() bool {
	if !e.CanPreviousPage() {
		return false
	}
	return e.SetPage(e.state.Page.Index - 1)
}

// CanNextPage reports whether a later page exists.
func (e *Engine[T]) CanNextPage() bool {
	return e.state.Page.Index+1 < e.pageCount(e.state)
}

// CanPreviousPage reports whether an earlier page exists.
func (e *Engine[T]) CanPreviousPage() bool {
	return e.state.Page.Index > 0
}

// NextPageSize returns the size following the current one in PageSizeOptions.
func (e *Engine[T]) NextPageSize() int {
	sizes := e.opts.PageSizeOptions
	for i, size := range sizes {
		if size == e.state.Page.Size {
			return sizes[(i+1)%len(sizes)]
		}
	}
	return sizes[0]
}

// SelectedRows returns the selected rows in source order, scanning the unfiltered rows.
func (e *Engine[T]) SelectedRows() []T {
	out := make([]T, 0, len(e.state.Selection))
	for i, row := range e.rows {
		if e.state.Selection[e.keys[i]] {
			out = append(out, row)
		}
	}
	return out
}

// SelectionSummary returns how many filtered rows are selected and how many rows pass
// search and filters.
func (e *Engine[T]) SelectionSummary() (selected, filtered int) {
	_, keys := e.filtered(e.state)
	for _, key := range keys {
		if e.state.Selection[key] {
			selected++
		}
	}
	return selected, len(keys)
}

// PageSelection reports whether every row on the current page is selected, and
// whether only some are (the indeterminate header checkbox).
func (e *Engine[T]) PageSelection() (all, some bool) {
	keys := e.VisibleRows().Keys
	if len(keys) == 0 {
		return false, false
	}
	n := 0
	for _, key := range keys {
		if e.state.Selection[key] {
			n++
		}
	}
	all = n == len(keys)
	return all, n > 0 && !all
}
