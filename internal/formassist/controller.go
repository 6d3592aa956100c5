package formassist

import "fmt"

const (
	lengthKey   = "formassist.length"
	populateKey = "formassist.populate."
)

// Controller binds a fixed rule set to a host form.
type Controller struct {
	lengths  []LengthRule
	pairings []Pairing
}

// New validates the rules and returns a controller for them.
func New(lengths []LengthRule, pairings []Pairing) (*Controller, error) {
	seen := make(map[Pairing]bool, len(pairings))
	for _, r := range lengths {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	for _, p := range pairings {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if seen[p] {
			return nil, fmt.Errorf("%s -> %s: %w", p.Source, p.Target, ErrDuplicatePairing)
		}
		seen[p] = true
	}
	c := &Controller{
		lengths:  append([]LengthRule(nil), lengths...),
		pairings: append([]Pairing(nil), pairings...),
	}
	for i := range c.lengths {
		c.lengths[i].Thresholds = append([]Threshold(nil), c.lengths[i].Thresholds...)
	}
	return c, nil
}

// Default returns the controller for the SEO tag admin form.
func Default() *Controller {
	c, err := New(DefaultLengthRules(), DefaultPairings())
	if err != nil {
		panic(err)
	}
	return c
}

// LengthRules returns a copy of the controller's length rules.
func (c *Controller) LengthRules() []LengthRule {
	out := make([]LengthRule, len(c.lengths))
	for i, r := range c.lengths {
		out[i] = LengthRule{Field: r.Field, Thresholds: append([]Threshold(nil), r.Thresholds...)}
	}
	return out
}

// Pairings returns a copy of the controller's pairings.
func (c *Controller) Pairings() []Pairing {
	return append([]Pairing(nil), c.pairings...)
}

// Initialize registers every rule on form. Calling it again on the same form
// rebinds the same handler keys, so behaviour does not change.
func (c *Controller) Initialize(form Form) {
	if form == nil {
		return
	}
	for _, r := range c.lengths {
		RegisterLengthIndicator(form, r)
	}
	for _, p := range c.pairings {
		RegisterAutoPopulate(form, p)
	}
}

// RegisterLengthIndicator recolours rule.Field on every change. It does
// nothing when the field is absent.
func RegisterLengthIndicator(form Form, rule LengthRule) {
	field, ok := lookup(form, rule.Field)
	if !ok || len(rule.Thresholds) == 0 {
		return
	}
	name := rule.Field
	field.On(Changed, lengthKey, func() {
		f, ok := lookup(form, name)
		if !ok {
			return
		}
		f.SetIndicator(rule.ColorFor(f.Value()))
	})
}

// RegisterAutoPopulate copies p.Source into p.Target when the source loses
// focus and the target is exactly empty. The pairing is inert when either
// field is absent.
func RegisterAutoPopulate(form Form, p Pairing) {
	source, ok := lookup(form, p.Source)
	if !ok {
		return
	}
	if _, ok := lookup(form, p.Target); !ok {
		return
	}
	source.On(Blurred, populateKey+p.Target, func() {
		src, ok := lookup(form, p.Source)
		if !ok {
			return
		}
		dst, ok := lookup(form, p.Target)
		if !ok {
			return
		}
		if dst.Value() == "" {
			dst.SetValue(src.Value())
		}
	})
}

func lookup(form Form, name string) (Field, bool) {
	if form == nil || name == "" {
		return nil, false
	}
	f, ok := form.Field(name)
	if !ok || f == nil {
		return nil, false
	}
	return f, true
}
