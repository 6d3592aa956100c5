package util

import "strings"

// SplitKeywords splits a comma-separated keyword list, trimming blanks and
// dropping case-insensitive duplicates while keeping first spellings.
func SplitKeywords(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool)
	for _, p := range parts {
		kw := strings.Join(strings.Fields(p), " ")
		if kw == "" {
			continue
		}
		key := strings.ToLower(kw)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, kw)
	}
	return out
}

// NormalizeKeywords rewrites a keyword list as "a, b, c".
func NormalizeKeywords(raw string) string {
	return strings.Join(SplitKeywords(raw), ", ")
}
