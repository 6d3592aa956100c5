// Package formassist adds advisory feedback to an admin form: border colours
// that track field length, and copy-if-empty pairing between sibling fields.
//
// The package never owns form state. The host injects a Form, and every
// handler re-reads what it needs from that Form when its event fires.
package formassist

// Event identifies the kind of field notification a handler subscribes to.
type Event int

const (
	// Changed fires on every edit that alters the field's value.
	Changed Event = iota
	// Blurred fires once when the field loses input focus.
	Blurred
)

func (e Event) String() string {
	switch e {
	case Changed:
		return "changed"
	case Blurred:
		return "blurred"
	default:
		return "unknown"
	}
}

// Handler runs synchronously on the host's event loop.
type Handler func()

// Field is a named text input owned by the host.
type Field interface {
	Value() string
	SetValue(v string)
	// SetIndicator applies a colour label (see Green, Orange, Red) to the
	// field's visual indicator, typically its border.
	SetIndicator(color string)
	// On subscribes fn to ev under key. Subscribing again with the same
	// event and key replaces the earlier handler.
	On(ev Event, key string, fn Handler)
}

// Form resolves fields by name. ok is false when the field does not exist.
//
//go:generate mockgen -source=host.go -destination=mock_host_test.go -package=formassist
type Form interface {
	Field(name string) (f Field, ok bool)
}
