package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gridkit/internal/catalog"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const catalogFooter = "↑/↓ move  enter open  ctrl+u clear  esc quit"

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries its own ANSI styling
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case ModeTable:
		return m.viewTable()
	case ModeTrays:
		return m.viewTrays()
	default:
		return m.viewCatalog()
	}
}

func (m *Model) viewCatalog() string {
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.breadcrumb(), style: styles.Header})
	m.syncViewport()
	current := m.catalog
	if len(current.Items) == 0 {
		msg := "(no pages)"
		if current.Filter.Text != "" {
			msg = fmt.Sprintf("No matches for %q", current.Filter.Text)
		}
		lines = append(lines, styledLine{text: msg, style: styles.Info})
	} else {
		start := 0
		if maxItems := m.maxVisibleItems(); maxItems > 0 && len(current.Items) > maxItems {
			start = min(current.ViewportOffset, len(current.Items)-maxItems)
		}
		for i, item := range current.Window(m.maxVisibleItems()) {
			lines = append(lines, m.buildItemLine(item.Label, start+i == current.Cursor))
		}
	}
	lines = m.appendInfoAndFooter(lines, catalogFooter)
	return m.finishView(lines, m.filterPrompt("(type to filter pages)"))
}

// finishView fits the content to the window and appends the status line and the
// bottom line.
func (m *Model) finishView(lines []styledLine, bottom string) string {
	lines = limitHeight(lines, m.height-2, m.width)
	lines = applyWidth(lines, m.width)

	var statusLine styledLine
	if m.errMsg != "" {
		statusLine = styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	} else if warn, msg := m.hasBackendIssue(); warn {
		statusLine = styledLine{text: fmt.Sprintf("Reload failed: %s", msg), style: styles.Error}
	}
	bottomLines := applyWidth([]styledLine{statusLine, {text: bottom, raw: true}}, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

func (m *Model) appendInfoAndFooter(lines []styledLine, footer string) []styledLine {
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: footer, style: styles.Footer})
	}
	return lines
}

// buildItemLine constructs a single styledLine for a menu entry.
func (m *Model) buildItemLine(label string, selected bool) styledLine {
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if selected {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	text := "▌ " + label
	if m.width > 0 {
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
	}
	return styledLine{
		text:          text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

// breadcrumb renders the trail for the active screen.
func (m *Model) breadcrumb() string {
	path := "/"
	if m.mode != ModeCatalog {
		path += m.pageID()
	}
	return catalog.Trail(catalog.Breadcrumbs(path))
}

func (m *Model) pageTitle() string {
	if page, ok := m.registry.Find(m.pageID()); ok {
		return page.Title
	}
	return ""
}

func checkbox(all, some bool) string {
	switch {
	case all:
		return "[x]"
	case some:
		return "[-]"
	default:
		return "[ ]"
	}
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		if line.raw {
			if lipgloss.Width(line.text) > width {
				line.text = truncate.StringWithTail(line.text, uint(width-1), "…")
			}
		} else {
			line.text = truncateText(line.text, width)
		}
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
