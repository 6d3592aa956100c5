package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/akyairhashvil/seodesk/internal/config"
	"github.com/akyairhashvil/seodesk/internal/formassist"
)

type handlerKey struct {
	ev  formassist.Event
	key string
}

// formField is one text input of the edit form. It satisfies
// formassist.Field; SetValue does not fire Changed.
type formField struct {
	name      string
	label     string
	section   string
	input     textinput.Model
	indicator string
	handlers  map[handlerKey]formassist.Handler
	order     []handlerKey
}

func newFormField(spec fieldSpec) *formField {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = spec.placeholder
	ti.Width = config.DefaultInputWidth
	return &formField{
		name:     spec.name,
		label:    spec.label,
		section:  spec.section,
		input:    ti,
		handlers: make(map[handlerKey]formassist.Handler),
	}
}

func (f *formField) Value() string { return f.input.Value() }

func (f *formField) SetValue(v string) { f.input.SetValue(v) }

func (f *formField) SetIndicator(color string) { f.indicator = color }

func (f *formField) On(ev formassist.Event, key string, fn formassist.Handler) {
	k := handlerKey{ev: ev, key: key}
	if _, ok := f.handlers[k]; !ok {
		f.order = append(f.order, k)
	}
	f.handlers[k] = fn
}

// fire runs the handlers for ev in subscription order.
func (f *formField) fire(ev formassist.Event) {
	for _, k := range f.order {
		if k.ev != ev {
			continue
		}
		if fn := f.handlers[k]; fn != nil {
			fn()
		}
	}
}

// fieldSet is the formassist.Form view of the edit form.
type fieldSet struct {
	fields []*formField
	byName map[string]*formField
}

func newFieldSet(specs []fieldSpec) *fieldSet {
	s := &fieldSet{byName: make(map[string]*formField, len(specs))}
	for _, spec := range specs {
		f := newFormField(spec)
		s.fields = append(s.fields, f)
		s.byName[f.name] = f
	}
	return s
}

func (s *fieldSet) Field(name string) (formassist.Field, bool) {
	f, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return f, true
}
