// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"strings"

	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

// renderIfMissing renders the template into the destination unless the file
// is already there.
func renderIfMissing(engine *template.Engine, name string, data any, path string) error {
	if fsutil.FileExists(path) {
		return nil
	}
	return engine.RenderToFile(name, data, path)
}

// titleCase splits the name on case and separator boundaries and joins the
// words with spaces, each capitalized.
func titleCase(name string) string {
	words := splitWords(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// upperCamelCase splits the name on case and separator boundaries and joins
// the capitalized words.
func upperCamelCase(name string) string {
	words := splitWords(name)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, "")
}

func splitWords(name string) []string {
	var words []string
	var current []rune
	isUpper := func(r rune) bool { return r >= 'A' && r <= 'Z' }
	isLower := func(r rune) bool { return r >= 'a' && r <= 'z' || r >= '0' && r <= '9' }
	push := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}
	for _, r := range name {
		switch {
		case r == ' ' || r == '-' || r == '_' || r == '.':
			push()
		case isUpper(r):
			// a lower-to-upper boundary starts a new word
			if len(current) > 0 && isLower(current[len(current)-1]) {
				push()
			}
			current = append(current, r)
		default:
			// an acronym run followed by a lowercase splits before its
			// last letter: HTTPServer becomes HTTP and Server
			if len(current) >= 2 && isUpper(current[len(current)-1]) && isUpper(current[len(current)-2]) {
				last := current[len(current)-1]
				current = current[:len(current)-1]
				push()
				current = []rune{last}
			}
			current = append(current, r)
		}
	}
	push()
	return words
}
