package events

import "github.com/atomicstack/item-directory/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Loaded(items, posts int) {
	logging.Trace("app.loaded", map[string]interface{}{"items": items, "posts": posts})
}

func (AppTracer) Navigate(path string) {
	logging.Trace("app.navigate", map[string]interface{}{"path": path})
}

func (AppTracer) Screen(name string) {
	logging.Trace("app.screen", map[string]interface{}{"screen": name})
}
