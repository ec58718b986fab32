// SPDX-License-Identifier: MPL-2.0

package manifest

import "strings"

// capitalize upper-cases the first ASCII letter of the word.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// snakeCase converts the name to lower snake case, splitting on separators
// and on lower-to-upper case boundaries.
func snakeCase(name string) string {
	var b strings.Builder
	previousLower := false
	for _, r := range name {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '.':
			if b.Len() > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteByte('_')
			}
			previousLower = false
		case r >= 'A' && r <= 'Z':
			if previousLower {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			previousLower = false
		default:
			b.WriteRune(r)
			previousLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		}
	}
	return b.String()
}
