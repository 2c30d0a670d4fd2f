// Package ui contains the Bubble Tea program that hosts the page catalog.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, input, rendering and per-page state.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, command results, backend events).
//   - Key presses are dispatched by mode: the catalog menu
//     (internal/ui/navigation.go), the customer table (table.go) and the tray
//     grid (trays.go). Text entry for the catalog filter and the table search
//     shares the prompt helpers in input.go.
//
// State ownership:
//   - The catalog menu is an internal/ui/state.Level over the pages of the
//     internal/catalog registry.
//   - The customer table owns a datagrid.Engine; every search, filter, sort,
//     visibility, selection and paging change is an engine action.
//   - The tray page owns the trays, a tray.Selection and a tray.FilterPanel.
//   - Side effects (clipboard copies, applying tray filters) run asynchronously
//     through the internal/ui/command bus and report back as command.Result.
//   - When a backend.Watcher is attached, each poll arrives as a backend event;
//     the dispatcher updates the internal/state stores and only changed data is
//     pushed into the pages (backend.go).
package ui
