// SPDX-License-Identifier: MPL-2.0

package manifest_test

import (
	"testing"

	"gopkg.in/yaml.v3"

	"pumlgen/internal/manifest"
	"pumlgen/internal/urn"
)

func TestIconSource(t *testing.T) {
	t.Parallel()

	var icon manifest.Icon
	if err := yaml.Unmarshal([]byte("type: Source\nsource: the_source_path\n"), &icon); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if icon.Kind != manifest.IconKindSource || icon.Source != "the_source_path" {
		t.Errorf("icon = %+v", icon)
	}

	itemUrn := urn.Parse("testlib/package/module/ItemA")
	if got := icon.IconPath(itemUrn, "png"); got != "testlib/package/module/ItemA.png" {
		t.Errorf("IconPath() = %q", got)
	}
	if got := icon.SpriteName(itemUrn, "xs"); got != "ItemAXs" {
		t.Errorf("SpriteName() = %q", got)
	}
	if got := icon.SpriteImagePath(itemUrn, "md"); got != "testlib/package/module/ItemAMd.png" {
		t.Errorf("SpriteImagePath() = %q", got)
	}
	if got := icon.SpriteValuePath(itemUrn, "lg"); got != "testlib/package/module/ItemALg.puml" {
		t.Errorf("SpriteValuePath() = %q", got)
	}
}

func TestIconReference(t *testing.T) {
	t.Parallel()

	var icon manifest.Icon
	if err := yaml.Unmarshal([]byte("type: Reference\nurn: testlib/package/module/ItemB\n"), &icon); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if icon.Kind != manifest.IconKindReference || icon.Urn.Value != "testlib/package/module/ItemB" {
		t.Errorf("icon = %+v", icon)
	}

	// reference icons resolve to the referenced item
	itemUrn := urn.Parse("testlib/package/module/ItemA")
	if got := icon.IconPath(itemUrn, "png"); got != "testlib/package/module/ItemB.png" {
		t.Errorf("IconPath() = %q", got)
	}
	if got := icon.SpriteName(itemUrn, "sm"); got != "ItemBSm" {
		t.Errorf("SpriteName() = %q", got)
	}
}

func TestIconInvalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		yaml string
	}{
		{name: "unknown kind", yaml: "type: Embedded\nsource: path\n"},
		{name: "source without path", yaml: "type: Source\n"},
		{name: "reference without urn", yaml: "type: Reference\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var icon manifest.Icon
			if err := yaml.Unmarshal([]byte(tc.yaml), &icon); err == nil {
				t.Error("Unmarshal() error = nil, want error")
			}
		})
	}
}
