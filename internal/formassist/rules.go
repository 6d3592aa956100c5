package formassist

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Indicator colour labels.
const (
	Green  = "green"
	Orange = "orange"
	Red    = "red"
)

// Field names the parity rules bind to.
const (
	FieldPageTitle          = "page_title"
	FieldMetaDescription    = "meta_description"
	FieldOGTitle            = "og_title"
	FieldOGDescription      = "og_description"
	FieldOGImageURL         = "og_image_url"
	FieldTwitterTitle       = "twitter_title"
	FieldTwitterDescription = "twitter_description"
	FieldTwitterImageURL    = "twitter_image_url"
)

// NoLimit marks a threshold that never matches by length and only serves as
// the fallback entry.
const NoLimit = -1

var (
	ErrNoThresholds     = errors.New("length rule has no thresholds")
	ErrThresholdOrder   = errors.New("thresholds must ascend by max length")
	ErrEmptyFieldName   = errors.New("rule field name is empty")
	ErrSelfPairing      = errors.New("pairing source and target are the same field")
	ErrDuplicatePairing = errors.New("pairing declared twice")
)

// Threshold maps values of at most MaxLength characters to Color.
type Threshold struct {
	MaxLength int
	Color     string
}

// LengthRule colours Field by the first threshold whose MaxLength covers the
// value's length. The last threshold's colour is the fallback.
type LengthRule struct {
	Field      string
	Thresholds []Threshold
}

// Pairing copies Source into Target when Source loses focus and Target is
// exactly empty.
type Pairing struct {
	Source string
	Target string
}

// CharacterCount counts Unicode code points.
func CharacterCount(s string) int {
	return utf8.RuneCountInString(s)
}

// ColorFor returns the indicator colour for value.
func (r LengthRule) ColorFor(value string) string {
	return r.ColorForLength(CharacterCount(value))
}

// ColorForLength returns the indicator colour for a value of n characters.
func (r LengthRule) ColorForLength(n int) string {
	if len(r.Thresholds) == 0 {
		return ""
	}
	for _, t := range r.Thresholds {
		if t.MaxLength != NoLimit && t.MaxLength >= n {
			return t.Color
		}
	}
	return r.Thresholds[len(r.Thresholds)-1].Color
}

// Validate checks that the rule is usable as static configuration.
func (r LengthRule) Validate() error {
	if r.Field == "" {
		return ErrEmptyFieldName
	}
	if len(r.Thresholds) == 0 {
		return fmt.Errorf("%s: %w", r.Field, ErrNoThresholds)
	}
	prev := -1
	for i, t := range r.Thresholds {
		if t.MaxLength == NoLimit {
			if i != len(r.Thresholds)-1 {
				return fmt.Errorf("%s: unbounded threshold at %d is not last: %w", r.Field, i, ErrThresholdOrder)
			}
			continue
		}
		if t.MaxLength < 0 || t.MaxLength <= prev {
			return fmt.Errorf("%s: threshold %d (%d): %w", r.Field, i, t.MaxLength, ErrThresholdOrder)
		}
		prev = t.MaxLength
	}
	return nil
}

// Validate checks that the pairing names two distinct fields.
func (p Pairing) Validate() error {
	if p.Source == "" || p.Target == "" {
		return ErrEmptyFieldName
	}
	if p.Source == p.Target {
		return fmt.Errorf("%s: %w", p.Source, ErrSelfPairing)
	}
	return nil
}

// PageTitleRule: up to 60 green, 61-70 orange, beyond red.
func PageTitleRule() LengthRule {
	return LengthRule{
		Field: FieldPageTitle,
		Thresholds: []Threshold{
			{MaxLength: 60, Color: Green},
			{MaxLength: 70, Color: Orange},
			{MaxLength: NoLimit, Color: Red},
		},
	}
}

// MetaDescriptionRule: up to 160 green, beyond red.
func MetaDescriptionRule() LengthRule {
	return LengthRule{
		Field: FieldMetaDescription,
		Thresholds: []Threshold{
			{MaxLength: 160, Color: Green},
			{MaxLength: NoLimit, Color: Red},
		},
	}
}

// DefaultLengthRules returns fresh copies of the admin form's length rules.
func DefaultLengthRules() []LengthRule {
	return []LengthRule{PageTitleRule(), MetaDescriptionRule()}
}

// DefaultPairings returns the Open Graph to Twitter card pairings.
func DefaultPairings() []Pairing {
	return []Pairing{
		{Source: FieldOGTitle, Target: FieldTwitterTitle},
		{Source: FieldOGDescription, Target: FieldTwitterDescription},
		{Source: FieldOGImageURL, Target: FieldTwitterImageURL},
	}
}
