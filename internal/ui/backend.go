package ui

import (
	"github.com/atomicstack/gridkit/internal/backend"
	"github.com/atomicstack/gridkit/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent records the poll outcome per kind and pushes changed data
// into the pages. Page state such as search, sort and selection survives.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if m.backendState == nil {
		m.backendState = make(map[backend.Kind]error)
	}
	m.backendState[evt.Kind] = evt.Err
	if evt.Err != nil {
		m.backendLastErr = evt.Err.Error()
		events.App.Reload(evt.Kind.String(), 0, evt.Err)
		return
	}

	res := m.dispatcher.Handle(evt)
	if res.CustomersUpdated {
		rows := m.customers.Entries()
		m.table.engine.SetRows(rows)
		m.table.clampCursor()
		events.App.Reload(evt.Kind.String(), len(rows), nil)
	}
	if res.TraysUpdated {
		trays := m.trayStore.Entries()
		m.trays.trays = trays
		m.trays.clampCursor()
		events.App.Reload(evt.Kind.String(), len(trays), nil)
	}

	if warn, _ := m.hasBackendIssue(); !warn {
		m.backendLastErr = ""
	}
}

// hasBackendIssue reports whether the latest poll of any kind failed.
func (m *Model) hasBackendIssue() (bool, string) {
	for _, err := range m.backendState {
		if err != nil {
			msg := m.backendLastErr
			if msg == "" {
				msg = err.Error()
			}
			return true, msg
		}
	}
	return false, ""
}
