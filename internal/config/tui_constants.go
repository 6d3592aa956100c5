package config

// Layout constants.
const (
	// LabelWidth is the width of the field label column in the edit form.
	LabelWidth = 22

	// MinInputWidth is the minimum width of a form input.
	MinInputWidth = 20

	// DefaultInputWidth is used before the first WindowSizeMsg arrives.
	DefaultInputWidth = 60

	// CompactModeThreshold hides the list's description column below this width.
	CompactModeThreshold = 80
)

// Display limits.
const (
	// MaxVisibleTags limits rows shown in the tag list before scrolling.
	MaxVisibleTags = 20

	// MaxVisibleFields limits form rows shown before scrolling.
	MaxVisibleFields = 12

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
