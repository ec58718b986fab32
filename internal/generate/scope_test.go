// SPDX-License-Identifier: MPL-2.0

package generate_test

import (
	"testing"

	"pumlgen/internal/generate"
)

func TestParseCleanupScope(t *testing.T) {
	t.Parallel()

	scope, err := generate.ParseCleanupScope("SpriteValue")
	if err != nil {
		t.Fatalf("ParseCleanupScope() error = %v", err)
	}
	if scope != generate.ScopeSpriteValue {
		t.Errorf("scope = %q", scope)
	}
	if _, err := generate.ParseCleanupScope("Bogus"); err == nil {
		t.Error("ParseCleanupScope(Bogus) error = nil, want error")
	}
}

func TestCleanupScopeIncludedIn(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		scope  generate.CleanupScope
		scopes []generate.CleanupScope
		want   bool
	}{
		{"all in all", generate.ScopeAll, []generate.CleanupScope{generate.ScopeAll}, true},
		{"example in example", generate.ScopeExample, []generate.CleanupScope{generate.ScopeExample}, true},
		{"example in all", generate.ScopeExample, []generate.CleanupScope{generate.ScopeAll}, true},
		{"item in all and item", generate.ScopeItem, []generate.CleanupScope{generate.ScopeAll, generate.ScopeItem}, true},
		{"item source in item", generate.ScopeItemSource, []generate.CleanupScope{generate.ScopeItem}, true},
		{"item icon in item", generate.ScopeItemIcon, []generate.CleanupScope{generate.ScopeItem}, true},
		{"snippet source in snippet", generate.ScopeSnippetSource, []generate.CleanupScope{generate.ScopeSnippet}, true},
		{"sprite value in sprite", generate.ScopeSpriteValue, []generate.CleanupScope{generate.ScopeSprite}, true},
		{"sprite value in item", generate.ScopeSpriteValue, []generate.CleanupScope{generate.ScopeItem}, true},
		{"item not in item source", generate.ScopeItem, []generate.CleanupScope{generate.ScopeItemSource}, false},
		{"example not in item", generate.ScopeExample, []generate.CleanupScope{generate.ScopeItem}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := tc.scope.IncludedIn(tc.scopes); got != tc.want {
				t.Errorf("IncludedIn() = %v, want %v", got, tc.want)
			}
		})
	}
}
