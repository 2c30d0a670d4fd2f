package theme

import (
	"github.com/atomicstack/gridkit/internal/tray"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	MarkedItem            *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Title                 *lipgloss.Style
	Breadcrumb            *lipgloss.Style
	Header                *lipgloss.Style
	ColumnHeader          *lipgloss.Style
	FocusedColumn         *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Badge                 *lipgloss.Style
	Cursor                *lipgloss.Style
	Card                  *lipgloss.Style
	CardTitle             *lipgloss.Style
	Muted                 *lipgloss.Style
	SelectedWell          *lipgloss.Style
	WellCursor            *lipgloss.Style
	Wells                 map[tray.WellStatus]*lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	MarkedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Breadcrumb: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	ColumnHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true).Underline(true),
	),
	FocusedColumn: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true).Underline(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Badge: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Padding(0, 1),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Card: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
	),
	CardTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Muted: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	SelectedWell: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	WellCursor: ptr(
		lipgloss.NewStyle().Background(lipgloss.Color("238")),
	),
	Wells: map[tray.WellStatus]*lipgloss.Style{
		tray.StatusEmpty:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
		tray.StatusUnassigned:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33"))),
		tray.StatusUnassignedUrgent: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))),
		tray.StatusRequestSent:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34"))),
		tray.StatusAssigned:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("129"))),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Well returns the style for a well status, falling back to the empty style.
func (s *Styles) Well(status tray.WellStatus) *lipgloss.Style {
	if style, ok := s.Wells[status]; ok {
		return style
	}
	return s.Wells[tray.StatusEmpty]
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
