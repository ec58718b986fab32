// SPDX-License-Identifier: MPL-2.0

package manifest

import "pumlgen/internal/urn"

// Item is a leaf of the manifest tree: a single named resource with an
// optional icon and a set of visual elements.
type Item struct {
	// Urn of the item.
	Urn urn.Urn `yaml:"urn" json:"urn" jsonschema:"required"`
	// Family of the item, used to group items in the documentation.
	Family string `yaml:"family" json:"family,omitempty"`
	// Icon of the item.
	Icon *Icon `yaml:"icon" json:"icon,omitempty"`
	// Elements of the item.
	Elements []Element `yaml:"elements" json:"elements,omitempty"`
	// Templates overrides the item-level template names.
	Templates ItemTemplates `yaml:"templates" json:"templates,omitempty"`
}

// ItemTemplates names the templates of the item-level artifacts.
type ItemTemplates struct {
	// Documentation generates `<module>/<Item>.md`.
	Documentation string `yaml:"documentation" json:"documentation,omitempty"`
	// Source generates `<module>/<Item>.puml`.
	Source string `yaml:"source" json:"source,omitempty"`
	// Snippet generates `<module>/<element>.[Local|Remote].puml`.
	Snippet string `yaml:"snippet" json:"snippet,omitempty"`
}

func (i *Item) applyDefaults() {
	setDefault(&i.Templates.Documentation, DefaultTemplateItemDocumentation)
	setDefault(&i.Templates.Source, DefaultTemplateItemSource)
	setDefault(&i.Templates.Snippet, DefaultTemplateItemSnippet)
	for j := range i.Elements {
		i.Elements[j].Shape.applyDefaults()
	}
}
