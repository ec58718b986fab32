// SPDX-License-Identifier: MPL-2.0

package generate

import (
	"fmt"
	"slices"
)

// CleanupScope names a family of generated artifacts to delete before a run.
type CleanupScope string

// The cleanup scopes, from the widest to the narrowest.
const (
	ScopeAll           CleanupScope = "All"
	ScopeExample       CleanupScope = "Example"
	ScopeItem          CleanupScope = "Item"
	ScopeItemIcon      CleanupScope = "ItemIcon"
	ScopeItemSource    CleanupScope = "ItemSource"
	ScopeSnippet       CleanupScope = "Snippet"
	ScopeSnippetSource CleanupScope = "SnippetSource"
	ScopeSnippetImage  CleanupScope = "SnippetImage"
	ScopeSprite        CleanupScope = "Sprite"
	ScopeSpriteIcon    CleanupScope = "SpriteIcon"
	ScopeSpriteValue   CleanupScope = "SpriteValue"
)

var cleanupScopes = []CleanupScope{
	ScopeAll,
	ScopeExample,
	ScopeItem,
	ScopeItemIcon,
	ScopeItemSource,
	ScopeSnippet,
	ScopeSnippetSource,
	ScopeSnippetImage,
	ScopeSprite,
	ScopeSpriteIcon,
	ScopeSpriteValue,
}

// ParseCleanupScope maps a string to its scope.
func ParseCleanupScope(value string) (CleanupScope, error) {
	scope := CleanupScope(value)
	if !slices.Contains(cleanupScopes, scope) {
		return "", fmt.Errorf("unable to find a match for %s", value)
	}
	return scope, nil
}

// parents returns the scopes that imply this one.
func (s CleanupScope) parents() []CleanupScope {
	switch s {
	case ScopeItemIcon, ScopeItemSource:
		return []CleanupScope{ScopeAll, ScopeItem}
	case ScopeSnippetSource, ScopeSnippetImage:
		return []CleanupScope{ScopeAll, ScopeItem, ScopeSnippet}
	case ScopeSpriteIcon, ScopeSpriteValue:
		return []CleanupScope{ScopeAll, ScopeItem, ScopeSprite}
	default:
		return []CleanupScope{ScopeAll}
	}
}

// IncludedIn reports whether the scope is requested, directly or through a
// wider scope.
func (s CleanupScope) IncludedIn(scopes []CleanupScope) bool {
	if slices.Contains(scopes, s) {
		return true
	}
	for _, parent := range s.parents() {
		if slices.Contains(scopes, parent) {
			return true
		}
	}
	return false
}
