package events

import "github.com/atomicstack/gridkit/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) PageEnter(pageID, title, filter string) {
	logging.Trace("page.enter", map[string]any{
		"page":   pageID,
		"title":  title,
		"filter": filter,
	})
}

func (UITracer) PageLeave(pageID string) {
	logging.Trace("page.leave", map[string]any{"page": pageID})
}

func (UITracer) MenuCursor(levelID string, cursor int) {
	logging.Trace("menu.cursor", map[string]any{"level": levelID, "cursor": cursor})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]any{"width": width, "height": height})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]any{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]any{"info": info})
}

func (FilterTracer) Cleared(scope string) {
	logging.Trace("filter.clear", map[string]any{"scope": scope})
}

func (FilterTracer) WordBackspace(scope, text string) {
	logging.Trace("filter.word-backspace", map[string]any{"scope": scope, "filter": text})
}

func (FilterTracer) Cursor(scope string, pos int) {
	logging.Trace("filter.cursor", map[string]any{"scope": scope, "cursor": pos})
}

func (FilterTracer) CursorWord(scope string, pos int) {
	logging.Trace("filter.cursor-word", map[string]any{"scope": scope, "cursor": pos})
}

func (FilterTracer) Append(scope, text string) {
	logging.Trace("filter.append", map[string]any{"scope": scope, "filter": text})
}

func (FilterTracer) Backspace(scope, text string) {
	logging.Trace("filter.backspace", map[string]any{"scope": scope, "filter": text})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]any{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]any{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]any{"id": id, "label": label, "msg": msgType})
}
