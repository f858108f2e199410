package indent

import "strings"

// indentChars are the only characters that may appear in a leading
// whitespace run. Anything else, including other Unicode space
// characters, counts as content.
const indentChars = " \t"

// LeadingWhitespace returns the maximal prefix of s consisting of tabs
// and spaces.
func LeadingWhitespace(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return s[:i]
		}
	}
	return s
}

// TrimTrailing strips the maximal trailing run of tabs and spaces.
func TrimTrailing(s string) string {
	return strings.TrimRight(s, indentChars)
}

// IsBlank reports whether s contains nothing but tabs and spaces.
func IsBlank(s string) bool {
	return LeadingWhitespace(s) == s
}
