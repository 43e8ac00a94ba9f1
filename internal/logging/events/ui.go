package events

import "github.com/atomicstack/item-directory/internal/logging"

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

func (UITracer) Enter(screen, id string) {
	logging.Trace("ui.enter", map[string]interface{}{"screen": screen, "id": id})
}

func (UITracer) Cursor(screen string, cursor int) {
	logging.Trace("ui.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (UITracer) Resize(width, height int) {
	logging.Trace("ui.resize", map[string]interface{}{"width": width, "height": height})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared(screen string) {
	logging.Trace("filter.clear", map[string]interface{}{"screen": screen})
}

func (FilterTracer) WordBackspace(screen, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"screen": screen, "filter": filter})
}

func (FilterTracer) Cursor(screen string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"screen": screen, "cursor": pos})
}

func (FilterTracer) Append(screen, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"screen": screen, "filter": filter})
}

func (FilterTracer) Backspace(screen, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"screen": screen, "filter": filter})
}

func (CommandTracer) Queue(label string) {
	logging.Trace("command.queue", map[string]interface{}{"label": label})
}

func (CommandTracer) NoOp(label string) {
	logging.Trace("command.noop", map[string]interface{}{"label": label})
}

func (CommandTracer) Result(label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"label": label, "msg": msgType})
}
