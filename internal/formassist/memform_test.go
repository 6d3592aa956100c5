package formassist

type memField struct {
	value      string
	indicator  string
	indicators int
	writes     int
	handlers   map[Event]map[string]Handler
}

func (f *memField) Value() string { return f.value }

func (f *memField) SetValue(v string) {
	f.value = v
	f.writes++
}

func (f *memField) SetIndicator(color string) {
	f.indicator = color
	f.indicators++
}

func (f *memField) On(ev Event, key string, fn Handler) {
	if f.handlers == nil {
		f.handlers = make(map[Event]map[string]Handler)
	}
	if f.handlers[ev] == nil {
		f.handlers[ev] = make(map[string]Handler)
	}
	f.handlers[ev][key] = fn
}

func (f *memField) fire(ev Event) {
	for _, fn := range f.handlers[ev] {
		fn()
	}
}

// memForm is a minimal host: typing fires Changed, blur fires Blurred.
type memForm struct {
	fields map[string]*memField
}

func newMemForm(names ...string) *memForm {
	m := &memForm{fields: make(map[string]*memField)}
	for _, n := range names {
		m.fields[n] = &memField{}
	}
	return m
}

func allFields() []string {
	return []string{
		FieldPageTitle, FieldMetaDescription,
		FieldOGTitle, FieldOGDescription, FieldOGImageURL,
		FieldTwitterTitle, FieldTwitterDescription, FieldTwitterImageURL,
	}
}

func (m *memForm) Field(name string) (Field, bool) {
	f, ok := m.fields[name]
	if !ok {
		return nil, false
	}
	return f, true
}

func (m *memForm) typeInto(name, value string) {
	f := m.fields[name]
	f.value = value
	f.fire(Changed)
}

func (m *memForm) blur(name string) {
	m.fields[name].fire(Blurred)
}

func (m *memForm) handlerCount() int {
	n := 0
	for _, f := range m.fields {
		for _, hs := range f.handlers {
			n += len(hs)
		}
	}
	return n
}
