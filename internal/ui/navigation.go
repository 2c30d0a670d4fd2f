package ui

import (
	"fmt"

	"github.com/atomicstack/gridkit/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case ModeTable:
		return m.handleTableKey(keyMsg)
	case ModeTrays:
		return m.handleTraysKey(keyMsg)
	default:
		return m.handleCatalogKey(keyMsg)
	}
}

func (m *Model) handleCatalogKey(msg tea.KeyMsg) tea.Cmd {
	if m.handleTextInput(msg) {
		return nil
	}
	switch msg.String() {
	case "esc":
		return tea.Quit
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursorUp()
	case "down":
		m.moveCursorDown()
	case "pgup":
		m.moveCursor(m.catalog.MoveCursorPageUp(m.maxVisibleItems()))
	case "pgdown":
		m.moveCursor(m.catalog.MoveCursorPageDown(m.maxVisibleItems()))
	case "home":
		m.moveCursor(m.catalog.MoveCursorHome())
	case "end":
		m.moveCursor(m.catalog.MoveCursorEnd())
	}
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	item, ok := m.catalog.Current()
	if !ok {
		return nil
	}
	before := m.catalog.Filter.Pos()
	m.catalog.SetFilter("", 0)
	m.noteFilterCursorChange(before, m.catalog.Filter.Pos())
	if !m.openPage(item.ID) {
		m.setInfo(fmt.Sprintf("Selected %s (no page defined yet)", item.Label))
	}
	return nil
}

func (m *Model) moveCursorUp() {
	if n := len(m.catalog.Items); n > 0 {
		if m.catalog.Cursor > 0 {
			m.catalog.Cursor--
		} else {
			m.catalog.Cursor = n - 1
		}
		m.moveCursor(true)
	}
}

func (m *Model) moveCursorDown() {
	if n := len(m.catalog.Items); n > 0 {
		if m.catalog.Cursor < n-1 {
			m.catalog.Cursor++
		} else {
			m.catalog.Cursor = 0
		}
		m.moveCursor(true)
	}
}

func (m *Model) moveCursor(moved bool) {
	if moved {
		events.UI.MenuCursor(m.catalog.ID, m.catalog.Cursor)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.catalog.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	used := 3 // header + status line + filter prompt
	if info := m.currentInfo(); info != "" {
		used += 2
	}
	if m.showFooter {
		used += 2
	}
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}
