// SPDX-License-Identifier: MPL-2.0

package manifest_test

import (
	"fmt"
	"testing"

	"pumlgen/internal/manifest"
	"pumlgen/internal/urn"
)

func parseShape(t *testing.T, shape string) manifest.Shape {
	t.Helper()
	library, err := manifest.Parse([]byte(fmt.Sprintf(`
name: l
remote_url: u
packages:
  - urn: p
    modules:
      - urn: p/m
        items:
          - urn: p/m/f/Test
            elements:
              - shape:
%s
`, shape)))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return library.Packages[0].Modules[0].Items[0].Elements[0].Shape
}

func TestShapeKinds(t *testing.T) {
	t.Parallel()

	itemUrn := urn.Parse("p/m/f/Test")
	cases := []struct {
		name           string
		shape          string
		kind           string
		elementName    string
		stereotypeName string
	}{
		{
			name:           "icon with custom stereotype",
			shape:          "                  type: Icon\n                  stereotype_name: CustomStereotype",
			kind:           manifest.ShapeIcon,
			elementName:    "Test",
			stereotypeName: "CustomStereotype",
		},
		{
			name:           "icon card",
			shape:          "                  type: IconCard",
			kind:           manifest.ShapeIconCard,
			elementName:    "TestCard",
			stereotypeName: "IconCardElement",
		},
		{
			name:           "icon group",
			shape:          "                  type: IconGroup",
			kind:           manifest.ShapeIconGroup,
			elementName:    "TestGroup",
			stereotypeName: "IconGroupElement",
		},
		{
			name:           "group",
			shape:          "                  type: Group",
			kind:           manifest.ShapeGroup,
			elementName:    "Test",
			stereotypeName: "GroupElement",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			shape := parseShape(t, tc.shape)
			if shape.Kind != tc.kind {
				t.Errorf("Kind = %q, want %q", shape.Kind, tc.kind)
			}
			if got := shape.ElementName(itemUrn); got != tc.elementName {
				t.Errorf("ElementName() = %q, want %q", got, tc.elementName)
			}
			if shape.StereotypeName != tc.stereotypeName {
				t.Errorf("StereotypeName = %q, want %q", shape.StereotypeName, tc.stereotypeName)
			}
		})
	}
}

func TestShapeCustomProperties(t *testing.T) {
	t.Parallel()

	shape := parseShape(t, "                  type: Custom\n                  properties:\n                    keyA: valueA")
	if shape.Kind != manifest.ShapeCustom {
		t.Errorf("Kind = %q", shape.Kind)
	}
	if shape.StereotypeName != "" {
		t.Errorf("StereotypeName = %q, want empty", shape.StereotypeName)
	}
	if got := shape.Properties["keyA"]; got != "valueA" {
		t.Errorf("Properties[keyA] = %v", got)
	}
}

func TestShapeSnippetPaths(t *testing.T) {
	t.Parallel()

	itemUrn := urn.Parse("p/m/f/Test")
	shape := manifest.Shape{Kind: manifest.ShapeIconCard}
	if got := shape.LocalSnippetSourcePath(itemUrn); got != "p/m/f/TestCard.Local.puml" {
		t.Errorf("LocalSnippetSourcePath() = %q", got)
	}
	if got := shape.LocalSnippetImagePath(itemUrn, "png"); got != "p/m/f/TestCard.Local.png" {
		t.Errorf("LocalSnippetImagePath() = %q", got)
	}
	if got := shape.RemoteSnippetSourcePath(itemUrn); got != "p/m/f/TestCard.Remote.puml" {
		t.Errorf("RemoteSnippetSourcePath() = %q", got)
	}
	if got := shape.RemoteSnippetImagePath(itemUrn, "svg"); got != "p/m/f/TestCard.Remote.svg" {
		t.Errorf("RemoteSnippetImagePath() = %q", got)
	}
}
