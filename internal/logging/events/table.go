package events

import "github.com/atomicstack/gridkit/internal/logging"

type TableTracer struct{}

var Table = TableTracer{}

func (TableTracer) Search(text string, matched int) {
	logging.Trace("table.search", map[string]any{"text": text, "matched": matched})
}

func (TableTracer) Filter(key, value string, matched int) {
	logging.Trace("table.filter", map[string]any{"key": key, "value": value, "matched": matched})
}

func (TableTracer) Sort(column, direction string) {
	logging.Trace("table.sort", map[string]any{"column": column, "direction": direction})
}

func (TableTracer) Visibility(column string, visible bool) {
	logging.Trace("table.visibility", map[string]any{"column": column, "visible": visible})
}

func (TableTracer) Select(key string, selected bool) {
	logging.Trace("table.select", map[string]any{"key": key, "selected": selected})
}

func (TableTracer) SelectPage(keys []string, selected int) {
	logging.Trace("table.select-page", map[string]any{"keys": keys, "selected": selected})
}

func (TableTracer) Page(index, count int) {
	logging.Trace("table.page", map[string]any{"index": index, "count": count})
}

func (TableTracer) PageSize(size int) {
	logging.Trace("table.page-size", map[string]any{"size": size})
}
