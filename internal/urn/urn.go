// SPDX-License-Identifier: MPL-2.0

// Package urn implements the hierarchical, slash-delimited addresses used to
// identify, filter and relate the artifacts of a library.
package urn

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Urn is a hierarchical artifact address. It is a cheap value type, immutable
// after construction, with equality defined solely on Value.
type Urn struct {
	// Value is the full slash-delimited address.
	Value string
	// Name is the last segment of Value.
	Name string
	// Label is a human-readable rendering of Name.
	Label string
	// PathToBase is the relative path from the artifact location back to the
	// library root, one ".." per segment of Value.
	PathToBase string
}

// Parse builds a Urn from a slash-delimited string. Any string is valid,
// including one without a slash.
func Parse(value string) Urn {
	segments := strings.Split(value, "/")
	ups := make([]string, len(segments))
	for i := range ups {
		ups[i] = ".."
	}
	name := segments[len(segments)-1]
	return Urn{
		Value:      value,
		Name:       name,
		Label:      titleize(name),
		PathToBase: strings.Join(ups, "/"),
	}
}

// Parent returns the Urn with the last segment removed. A single-segment Urn
// is its own parent.
func (u Urn) Parent() Urn {
	idx := strings.LastIndex(u.Value, "/")
	if idx < 0 {
		return u
	}
	return Parse(u.Value[:idx])
}

// IncludedIn reports whether the Urn is selected by the given set. An empty
// set is a wildcard. Containment is deliberately bidirectional: a member that
// is an ancestor-or-equal of u matches, and so does a member that is a
// descendant-or-equal of u.
func (u Urn) IncludedIn(urns []Urn) bool {
	if len(urns) == 0 {
		return true
	}
	for _, other := range urns {
		if len(other.Value) <= len(u.Value) && strings.HasPrefix(u.Value, other.Value) {
			return true
		}
		if strings.HasPrefix(other.Value, u.Value) {
			return true
		}
	}
	return false
}

func (u Urn) String() string {
	return u.Value
}

// MarshalYAML renders the Urn as its plain string value.
func (u Urn) MarshalYAML() (any, error) {
	return u.Value, nil
}

// UnmarshalYAML parses the Urn from a plain string node.
func (u *Urn) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}
	*u = Parse(value)
	return nil
}

// titleize expands camel-case and separator boundaries into space-separated
// capitalized words: "ItemD" -> "Item D", "message_expiration" -> "Message
// Expiration".
func titleize(s string) string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case isUpper(r):
			prevLower := i > 0 && isLower(runes[i-1])
			nextLower := i+1 < len(runes) && isLower(runes[i+1])
			if prevLower || (nextLower && len(current) > 0) {
				flush()
			}
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	for i, w := range words {
		rs := []rune(strings.ToLower(w))
		rs[0] = toUpper(rs[0])
		words[i] = string(rs)
	}
	return strings.Join(words, " ")
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func toUpper(r rune) rune {
	if isLower(r) {
		return r - ('a' - 'A')
	}
	return r
}
