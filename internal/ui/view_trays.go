package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridkit/internal/tray"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	traysFooter   = "arrows well  n/p tray  space toggle  a select all  c clear  s/o/d filter  t/e text filter  x clear filters  enter apply  y copy  esc back"
	cardNameWidth = 16
	cardCellWidth = 2
)

var wellGlyphs = map[tray.WellStatus]string{
	tray.StatusEmpty:            "○",
	tray.StatusUnassigned:       "●",
	tray.StatusUnassignedUrgent: "●",
	tray.StatusRequestSent:      "●",
	tray.StatusAssigned:         "●",
}

const selectedGlyph = "◉"

var trayFieldPlaceholders = map[string]string{
	tray.FilterSampleType: "Sample type...",
	tray.FilterTest:       "Test...",
}

func (m *Model) viewTrays() string {
	p := m.trays
	p.clampCursor()
	lines := make([]styledLine, 0, 48)
	lines = append(lines, styledLine{text: m.breadcrumb(), style: styles.Breadcrumb})
	lines = append(lines, styledLine{text: m.pageTitle(), style: styles.Title})
	lines = append(lines, styledLine{text: statusCountsLine(tray.CountStatuses(p.trays)), style: styles.Info})
	lines = append(lines, styledLine{text: m.trayFilterBar(), raw: true})
	all := p.selection.IsSelectAllChecked(p.trays)
	lines = append(lines, styledLine{
		text:  fmt.Sprintf("%s Select all  %d selected", checkbox(all, !all && p.selection.Len() > 0), p.selection.Len()),
		style: styles.Item,
	})
	lines = append(lines, styledLine{})

	if len(p.trays) == 0 {
		lines = append(lines, styledLine{text: "No trays.", style: styles.Info})
	} else {
		for _, row := range strings.Split(m.renderTrayCards(), "\n") {
			lines = append(lines, styledLine{text: row, raw: true})
		}
		lines = append(lines, styledLine{text: m.wellDetail(), style: styles.Info})
		lines = append(lines, styledLine{text: wellLegend(), raw: true})
	}
	lines = m.appendInfoAndFooter(lines, traysFooter)
	return m.finishView(lines, m.traysBottomLine())
}

func statusCountsLine(c tray.StatusCounts) string {
	return fmt.Sprintf("Total %d  Request sent %d  Unassigned %d  Unassigned urgent %d  Requested urgent %d  Assigned %d",
		c.Total, c.RequestSent, c.Unassigned, c.UnassignedUrgent, c.RequestedUrgent, c.Assigned)
}

func (m *Model) trayFilterBar() string {
	active := m.trays.filters.Active()
	if len(active) == 0 {
		return render(styles.Muted, "Filters: none")
	}
	parts := make([]string, 0, len(active)+1)
	parts = append(parts, "Filters:")
	for _, f := range active {
		parts = append(parts, render(styles.Badge, f.Label))
	}
	return strings.Join(parts, " ")
}

// renderTrayCards lays the cards out left to right, wrapping when the next card
// would overflow the window width.
func (m *Model) renderTrayCards() string {
	p := m.trays
	var rows []string
	var current []string
	used := 0
	for i, t := range p.trays {
		card := m.renderTrayCard(t, i == p.tray)
		w := lipgloss.Width(card)
		if len(current) > 0 && m.width > 0 && used+w > m.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current, used = nil, 0
		}
		current = append(current, card)
		used += w
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTrayCard draws one tray: the name with its filled/total badge, the well
// grid under column labels and the dimensions footer.
func (m *Model) renderTrayCard(t tray.Tray, active bool) string {
	p := m.trays
	lines := make([]string, 0, t.Rows+3)
	name := truncate.StringWithTail(t.Name, cardNameWidth, "…")
	lines = append(lines, render(styles.CardTitle, name)+" "+render(styles.Badge, fmt.Sprintf("%d/%d", t.Filled(), len(t.Wells))))

	var head strings.Builder
	head.WriteString("   ")
	for _, col := range t.Columns {
		head.WriteString(fmt.Sprintf("%-*s", cardCellWidth, truncate.String(col, cardCellWidth)))
	}
	lines = append(lines, render(styles.Muted, strings.TrimRight(head.String(), " ")))

	for r := 1; r <= t.Rows; r++ {
		var row strings.Builder
		row.WriteString(render(styles.Muted, fmt.Sprintf("%2d ", r)))
		for c, col := range t.Columns {
			row.WriteString(m.renderWell(t, r, col, active && r-1 == p.row && c == p.col))
		}
		lines = append(lines, row.String())
	}
	lines = append(lines, render(styles.Muted, t.Dimensions()))

	card := styles.Card
	if card == nil {
		return strings.Join(lines, "\n")
	}
	style := *card
	if active {
		style = style.BorderForeground(lipgloss.Color("33"))
	}
	return style.Render(strings.Join(lines, "\n"))
}

// renderWell draws a grid position. Positions without a well stay blank.
func (m *Model) renderWell(t tray.Tray, row int, col string, cursor bool) string {
	glyph := " "
	var style *lipgloss.Style
	if well, ok := t.Cell(row, col); ok {
		glyph = wellGlyphs[well.Status]
		if glyph == "" {
			glyph = "?"
		}
		style = styles.Well(well.Status)
		if m.trays.selection.IsSelected(well.ID) {
			glyph = selectedGlyph
			style = styles.SelectedWell
		}
	}
	if cursor {
		s := lipgloss.NewStyle()
		if style != nil {
			s = *style
		}
		if styles.WellCursor != nil {
			s = s.Inherit(*styles.WellCursor)
		}
		s = s.Reverse(true)
		return s.Render(glyph) + " "
	}
	return render(style, glyph) + " "
}

// wellDetail describes the well under the cursor.
func (m *Model) wellDetail() string {
	p := m.trays
	t, ok := p.current()
	if !ok || len(t.Columns) == 0 {
		return ""
	}
	well, ok := p.currentWell()
	if !ok {
		return fmt.Sprintf("%s %s%d: no well", t.Name, t.Columns[p.col], p.row+1)
	}
	text := fmt.Sprintf("%s %s: %s", t.Name, well.Position(), well.Status.Label())
	if well.SampleID != "" {
		text += "  " + well.SampleID
	}
	if p.selection.IsSelected(well.ID) {
		text += "  (selected)"
	}
	return text
}

func wellLegend() string {
	parts := make([]string, 0, len(tray.Statuses)+1)
	for _, status := range tray.Statuses {
		parts = append(parts, render(styles.Well(status), wellGlyphs[status])+" "+status.Label())
	}
	parts = append(parts, render(styles.SelectedWell, selectedGlyph)+" Selected")
	return strings.Join(parts, "  ")
}

func (m *Model) traysBottomLine() string {
	if m.trays.field != "" {
		return m.filterPrompt(trayFieldPlaceholders[m.trays.field])
	}
	n := m.trays.selection.Len()
	return render(styles.Footer, fmt.Sprintf("%d well(s) selected", n))
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
