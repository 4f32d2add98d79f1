package events

import "github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Stop(state string) {
	logging.Trace("app.stop", map[string]interface{}{"state": state})
}
