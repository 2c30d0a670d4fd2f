package events

import "github.com/atomicstack/gridkit/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]any) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Dataset(source string, customers, trays int) {
	logging.Trace("app.dataset", map[string]any{"source": source, "customers": customers, "trays": trays})
}

func (AppTracer) Exit(err error) {
	payload := map[string]any{}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.exit", payload)
}

func (AppTracer) Reload(kind string, count int, err error) {
	payload := map[string]any{"kind": kind, "count": count}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.reload", payload)
}
