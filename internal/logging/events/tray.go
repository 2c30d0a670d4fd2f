package events

import "github.com/atomicstack/gridkit/internal/logging"

type TrayTracer struct{}

var Tray = TrayTracer{}

func (TrayTracer) Toggle(wellID string, selected bool) {
	logging.Trace("tray.toggle", map[string]any{"well": wellID, "selected": selected})
}

func (TrayTracer) SelectAll(checked bool, selected int) {
	logging.Trace("tray.select-all", map[string]any{"checked": checked, "selected": selected})
}

func (TrayTracer) Cursor(trayID string, row int, col string) {
	logging.Trace("tray.cursor", map[string]any{"tray": trayID, "row": row, "col": col})
}

func (TrayTracer) Filter(key, value string) {
	logging.Trace("tray.filter", map[string]any{"key": key, "value": value})
}

func (TrayTracer) FilterClear() {
	logging.Trace("tray.filter.clear", nil)
}

func (TrayTracer) Apply(filters map[string]string) {
	logging.Trace("tray.filter.apply", map[string]any{"filters": filters})
}
