package ui

import (
	"unicode"

	"github.com/atomicstack/gridkit/internal/logging/events"
	uistate "github.com/atomicstack/gridkit/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before, after int) {
	if before != after {
		m.filterCursorDirty = true
	}
}

// activePrompt returns the prompt receiving typed text on the current screen.
func (m *Model) activePrompt() (string, *uistate.Prompt) {
	switch m.mode {
	case ModeCatalog:
		return m.catalog.ID, &m.catalog.Filter
	case ModeTable:
		return "table:search", &m.table.search
	case ModeTrays:
		if m.trays.field != "" {
			return "trays:" + m.trays.field, &m.trays.input
		}
		return "", nil
	default:
		return "", nil
	}
}

// editPrompt applies edit to the active prompt and propagates text changes to
// whatever the prompt drives.
func (m *Model) editPrompt(edit func(*uistate.Prompt) bool) bool {
	_, p := m.activePrompt()
	if p == nil {
		return false
	}
	before := p.Pos()
	var changed bool
	switch m.mode {
	case ModeCatalog:
		changed = m.catalog.EditFilter(edit)
		if changed {
			m.syncViewport()
		}
	case ModeTable:
		changed = m.editSearch(edit)
	case ModeTrays:
		changed = m.editTrayField(edit)
	}
	if changed {
		m.noteFilterCursorChange(before, p.Pos())
	}
	return changed
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	scope, p := m.activePrompt()
	if p == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		if p.Text == "" || !m.editPrompt((*uistate.Prompt).Clear) {
			return false
		}
		m.clearMessages()
		events.Filter.Cleared(scope)
		return true
	case "ctrl+w":
		if !m.editPrompt((*uistate.Prompt).DeleteWordBackward) {
			return false
		}
		m.clearMessages()
		events.Filter.WordBackspace(scope, p.Text)
		return true
	case "ctrl+a":
		if !m.editPrompt((*uistate.Prompt).MoveStart) {
			return false
		}
		events.Filter.Cursor(scope, p.Cursor)
		return true
	case "ctrl+e":
		if !m.editPrompt((*uistate.Prompt).MoveEnd) {
			return false
		}
		events.Filter.Cursor(scope, p.Cursor)
		return true
	case "alt+b":
		if !m.editPrompt((*uistate.Prompt).MoveWordBackward) {
			return false
		}
		events.Filter.CursorWord(scope, p.Cursor)
		return true
	case "alt+f":
		if !m.editPrompt((*uistate.Prompt).MoveWordForward) {
			return false
		}
		events.Filter.CursorWord(scope, p.Cursor)
		return true
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if !m.editPrompt((*uistate.Prompt).DeleteRuneBackward) {
			return false
		}
		m.clearMessages()
		events.Filter.Backspace(scope, p.Text)
		return true
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToPrompt(scope, p, string(msg.Runes))
	case tea.KeySpace:
		return m.appendToPrompt(scope, p, " ")
	case tea.KeyLeft:
		if !m.editPrompt((*uistate.Prompt).MoveRuneBackward) {
			return false
		}
		events.Filter.Cursor(scope, p.Cursor)
		return true
	case tea.KeyRight:
		if !m.editPrompt((*uistate.Prompt).MoveRuneForward) {
			return false
		}
		events.Filter.Cursor(scope, p.Cursor)
		return true
	}
	return false
}

func (m *Model) appendToPrompt(scope string, p *uistate.Prompt, text string) bool {
	if !m.editPrompt(func(next *uistate.Prompt) bool { return next.Insert(text) }) {
		return false
	}
	m.clearMessages()
	events.Filter.Append(scope, p.Text)
	return true
}

// filterPrompt renders the active prompt with its caret, or the placeholder
// when the prompt is empty.
func (m *Model) filterPrompt(placeholder string) string {
	_, p := m.activePrompt()
	if p == nil {
		return ""
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = *styles.Cursor
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = *styles.Filter
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if p.Text == "" {
		runes := []rune(placeholder)
		var caretRune, rest string
		if len(runes) > 0 {
			caretRune = string(runes[0])
			rest = string(runes[1:])
		}
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = *styles.FilterPlaceholder
		}
		return prompt + m.renderFilterCursor(caretRune) + render(styles.FilterPlaceholder, rest)
	}
	before, at, after := p.Split()
	if at == "" {
		at = " "
	}
	return prompt + render(styles.Filter, before) + m.renderFilterCursor(at) + render(styles.Filter, after)
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)

	base := m.filterCursor.TextStyle.Inline(true)

	if m.filterCursor.Blink {
		return base.Render(char)
	}

	if styles.Cursor != nil {
		cursorStyle := styles.Cursor.Inline(true)
		base = base.Inherit(cursorStyle).Blink(false)
		return base.Render(char)
	}

	return base.Reverse(true).Render(char)
}
