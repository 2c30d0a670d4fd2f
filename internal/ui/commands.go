package ui

import (
	"github.com/atomicstack/gridkit/internal/logging"
	"github.com/atomicstack/gridkit/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleCommandResult(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		logging.Error(result.Err)
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		return nil
	}
	m.errMsg = ""
	if result.Info != "" && m.verbose {
		m.setInfo(result.Info)
	} else {
		m.forceClearInfo()
	}
	return nil
}
