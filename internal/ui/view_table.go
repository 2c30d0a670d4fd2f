package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridkit/internal/datagrid"
	"github.com/atomicstack/gridkit/internal/format/table"
)

const tableFooter = "↑/↓ row  tab mark  shift+tab mark page  pgup/pgdn page  ctrl+n/p column  ctrl+o sort  ctrl+v hide  ctrl+g/f filter  ctrl+l rows  ctrl+y copy  esc back"

func (m *Model) viewTable() string {
	t := m.table
	t.clampCursor()
	lines := make([]styledLine, 0, 32)
	lines = append(lines, styledLine{text: m.breadcrumb(), style: styles.Breadcrumb})
	lines = append(lines, styledLine{text: m.pageTitle(), style: styles.Title})
	lines = append(lines, styledLine{text: m.tableFilterBar(), raw: true})
	lines = append(lines, styledLine{text: m.tableColumnStatus(), style: styles.Muted})
	lines = append(lines, styledLine{})

	view := t.engine.VisibleRows()
	cols := t.engine.VisibleColumns()
	switch {
	case len(cols) == 0:
		lines = append(lines, styledLine{text: "All columns hidden.", style: styles.Info})
	default:
		head, body := m.tableRows(view, cols)
		lines = append(lines, styledLine{text: "  " + head, raw: true})
		if view.Empty() {
			lines = append(lines, styledLine{text: "  No results.", style: styles.Info})
		}
		for i, text := range body {
			lines = append(lines, m.tableRowLine(text, view.Keys[i], i == t.cursor))
		}
	}

	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: m.tableSummary(view), style: styles.Footer})
	lines = m.appendInfoAndFooter(lines, tableFooter)
	return m.finishView(lines, m.filterPrompt(m.searchPlaceholder()))
}

// tableRows formats the header and the page rows with aligned columns. The
// header carries the page checkbox and sort markers; the focused column title
// is highlighted.
func (m *Model) tableRows(view datagrid.View[dataRow], cols []datagrid.Column[dataRow]) (string, []string) {
	t := m.table
	focused, _ := t.focusedColumn()
	sort := t.engine.State().Sort
	all, some := t.engine.PageSelection()

	header := make([]string, 0, len(cols)+1)
	header = append(header, checkbox(all, some))
	aligns := make([]table.Alignment, 0, len(cols)+1)
	aligns = append(aligns, table.AlignLeft)
	for _, col := range cols {
		title := col.Title
		if sort.Column == col.Key {
			switch sort.Direction {
			case datagrid.SortAsc:
				title += " ↑"
			case datagrid.SortDesc:
				title += " ↓"
			}
		}
		style := styles.ColumnHeader
		if col.Key == focused.Key {
			style = styles.FocusedColumn
		}
		if style != nil {
			title = style.Render(title)
		}
		header = append(header, title)
		aligns = append(aligns, col.Align)
	}

	st := t.engine.State()
	rows := make([][]string, len(view.Rows))
	for i, row := range view.Rows {
		cells := make([]string, 0, len(cols)+1)
		cells = append(cells, checkbox(st.IsSelected(view.Keys[i]), false))
		for _, col := range cols {
			cells = append(cells, col.Text(row))
		}
		rows[i] = cells
	}
	return table.WithHeader(header, rows, aligns)
}

func (m *Model) tableRowLine(text, key string, current bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if m.table.engine.State().IsSelected(key) {
		lineStyle = styles.MarkedItem
	}
	if current {
		lineStyle = styles.SelectedItem
		indicatorStyle = styles.SelectedItemIndicator
	}
	return styledLine{
		text:          "▌ " + text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// tableFilterBar renders each filter select as a badge showing its value.
func (m *Model) tableFilterBar() string {
	t := m.table
	specs := t.engine.Filters()
	parts := make([]string, 0, len(specs)+1)
	parts = append(parts, "Filters:")
	for i, spec := range specs {
		label := spec.LabelFor(t.engine.FilterValue(spec.Key))
		style := styles.Badge
		if i == t.filter {
			style = styles.FocusedColumn
		}
		if style != nil {
			label = style.Render(label)
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

// tableColumnStatus describes the focused column and lists hidden ones.
func (m *Model) tableColumnStatus() string {
	t := m.table
	col, ok := t.focusedColumn()
	if !ok {
		return ""
	}
	flags := make([]string, 0, 2)
	if col.Sortable {
		flags = append(flags, "sortable")
	}
	if !t.engine.ColumnVisible(col.Key) {
		flags = append(flags, "hidden")
	}
	text := "Column: " + col.Title
	if len(flags) > 0 {
		text += " (" + strings.Join(flags, ", ") + ")"
	}
	var hidden []string
	for _, c := range t.engine.Columns() {
		if !t.engine.ColumnVisible(c.Key) {
			hidden = append(hidden, c.Title)
		}
	}
	if len(hidden) > 0 {
		text += "  Hidden: " + strings.Join(hidden, ", ")
	}
	return text
}

// tableSummary is the footer: the selection count over the filtered rows and the
// pagination position.
func (m *Model) tableSummary(view datagrid.View[dataRow]) string {
	t := m.table
	selected, filtered := t.engine.SelectionSummary()
	text := fmt.Sprintf("%d of %d row(s) selected.", selected, filtered)
	if t.engine.Options().DisablePagination {
		return text
	}
	pages := max(view.PageCount, 1)
	return fmt.Sprintf("%s  Rows per page: %d  Page %d of %d", text, t.engine.State().Page.Size, view.PageIndex+1, pages)
}

func (m *Model) searchPlaceholder() string {
	col, ok := m.table.engine.Column(m.table.engine.Options().SearchColumn)
	if !ok {
		return "Filter..."
	}
	return fmt.Sprintf("Filter %ss...", strings.ToLower(col.Title))
}
