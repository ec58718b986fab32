// SPDX-License-Identifier: MPL-2.0

package manifest_test

import (
	"testing"

	"pumlgen/internal/manifest"
	"pumlgen/internal/urn"
)

func TestParseLibraryDefaults(t *testing.T) {
	t.Parallel()

	library, err := manifest.Parse([]byte(`
name: testlib
remote_url: testlib.local:3000/distribution
customization:
  icon_format: svg
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if library.Name != "testlib" {
		t.Errorf("Name = %q, want %q", library.Name, "testlib")
	}
	if len(library.Packages) != 0 {
		t.Errorf("Packages = %d, want 0", len(library.Packages))
	}
	if got := library.Templates.Bootstrap; got != "library_bootstrap.tmpl" {
		t.Errorf("Templates.Bootstrap = %q", got)
	}
	if got := library.Templates.Documentation; got != "library_documentation.tmpl" {
		t.Errorf("Templates.Documentation = %q", got)
	}
	if got := library.Customization.IconFormat; got != "svg" {
		t.Errorf("Customization.IconFormat = %q, want svg", got)
	}
	if got := library.Customization.FontSizeXS; got != 10 {
		t.Errorf("Customization.FontSizeXS = %d, want 10", got)
	}
	if got := library.Customization.IconHeight; got != 50 {
		t.Errorf("Customization.IconHeight = %d, want 50", got)
	}
}

func TestParseLibraryTemplatesOverride(t *testing.T) {
	t.Parallel()

	library, err := manifest.Parse([]byte(`
name: testlib
remote_url: testlib.local:3000/distribution
templates:
  bootstrap: dummy_path
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := library.Templates.Bootstrap; got != "dummy_path" {
		t.Errorf("Templates.Bootstrap = %q, want dummy_path", got)
	}
	if got := library.Templates.Documentation; got != "library_documentation.tmpl" {
		t.Errorf("Templates.Documentation = %q", got)
	}
}

func TestParsePackage(t *testing.T) {
	t.Parallel()

	library, err := manifest.Parse([]byte(`
name: testlib
remote_url: testlib.local:3000/distribution
packages:
  - urn: testlib/packagetest0
    templates:
      bootstrap: templates_bootstrap_path
      embedded: templates_embedded_path
  - urn: testlib/packagetest1
    rendering:
      skip_embedded: true
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(library.Packages) != 2 {
		t.Fatalf("Packages = %d, want 2", len(library.Packages))
	}
	first := library.Packages[0]
	if first.Urn.Value != "testlib/packagetest0" {
		t.Errorf("Urn = %q", first.Urn.Value)
	}
	if first.Templates.Bootstrap != "templates_bootstrap_path" {
		t.Errorf("Templates.Bootstrap = %q", first.Templates.Bootstrap)
	}
	if first.Templates.Embedded != "templates_embedded_path" {
		t.Errorf("Templates.Embedded = %q", first.Templates.Embedded)
	}
	if first.Templates.Documentation != "package_documentation.tmpl" {
		t.Errorf("Templates.Documentation = %q", first.Templates.Documentation)
	}
	if first.Rendering.SkipEmbedded {
		t.Error("Rendering.SkipEmbedded = true, want false")
	}
	if !library.Packages[1].Rendering.SkipEmbedded {
		t.Error("Rendering.SkipEmbedded = false, want true")
	}
}

func TestParseItem(t *testing.T) {
	t.Parallel()

	library, err := manifest.Parse([]byte(`
name: testlib
remote_url: testlib.local:3000/distribution
packages:
  - urn: testlib/package
    modules:
      - urn: testlib/package/module
        items:
          - urn: testlib/package/module/ItemA
            family: item_family
            templates:
              snippet: item_templates_snippet
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	item := library.Packages[0].Modules[0].Items[0]
	if item.Urn.Value != "testlib/package/module/ItemA" {
		t.Errorf("Urn = %q", item.Urn.Value)
	}
	if item.Family != "item_family" {
		t.Errorf("Family = %q", item.Family)
	}
	if len(item.Elements) != 0 {
		t.Errorf("Elements = %d, want 0", len(item.Elements))
	}
	if item.Templates.Source != "item_source.tmpl" {
		t.Errorf("Templates.Source = %q", item.Templates.Source)
	}
	if item.Templates.Snippet != "item_templates_snippet" {
		t.Errorf("Templates.Snippet = %q", item.Templates.Snippet)
	}
}

func TestListSpriteSizes(t *testing.T) {
	t.Parallel()

	library, err := manifest.Parse([]byte(`
name: testlib
remote_url: testlib.local:3000/distribution
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	sizes := library.Customization.ListSpriteSizes()
	want := []manifest.SpriteSize{
		{Name: "xs", Height: 10},
		{Name: "sm", Height: 12},
		{Name: "md", Height: 16},
		{Name: "lg", Height: 20},
	}
	if len(sizes) != len(want) {
		t.Fatalf("len = %d, want %d", len(sizes), len(want))
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("sizes[%d] = %+v, want %+v", i, sizes[i], want[i])
		}
	}
}

func TestExamplePaths(t *testing.T) {
	t.Parallel()

	example := manifest.Example{Name: "Just an Example", Template: "example.tmpl"}
	packageUrn := urn.Parse("testlib/package")
	if got := example.SourcePath(packageUrn); got != "testlib/package/just_an_example.puml" {
		t.Errorf("SourcePath() = %q", got)
	}
	if got := example.DestinationPath(packageUrn, "png"); got != "testlib/package/just_an_example.png" {
		t.Errorf("DestinationPath() = %q", got)
	}
}
