package events

import "github.com/ElectrifyPro/dnd-initiative-tracker/internal/logging"

type StateTracer struct{}

type FormTracer struct{}

var (
	State = StateTracer{}
	Form  = FormTracer{}
)

func (StateTracer) Transition(from, to, key string) {
	logging.Trace("state.transition", map[string]interface{}{
		"from": from,
		"to":   to,
		"key":  key,
	})
}

func (StateTracer) Ignored(state, key string) {
	logging.Trace("state.ignored", map[string]interface{}{"state": state, "key": key})
}

func (FormTracer) Commit(form, field, value string) {
	logging.Trace("form.commit", map[string]interface{}{
		"form":  form,
		"field": field,
		"value": value,
	})
}

func (FormTracer) Row(form string, row int) {
	logging.Trace("form.row", map[string]interface{}{"form": form, "row": row})
}
