// SPDX-License-Identifier: MPL-2.0

package manifest

import "pumlgen/internal/urn"

// Module groups items under a common URN.
type Module struct {
	// Urn of the module.
	Urn urn.Urn `yaml:"urn" json:"urn" jsonschema:"required"`
	// Items provided by the module.
	Items []Item `yaml:"items" json:"items,omitempty"`
	// Templates overrides the module-level template names.
	Templates ModuleTemplates `yaml:"templates" json:"templates,omitempty"`
}

// ModuleTemplates names the templates of the module-level artifacts.
type ModuleTemplates struct {
	// Documentation generates `<module>/README.md`.
	Documentation string `yaml:"documentation" json:"documentation,omitempty"`
}

func (m *Module) applyDefaults() {
	setDefault(&m.Templates.Documentation, DefaultTemplateModuleDocumentation)
	for i := range m.Items {
		m.Items[i].applyDefaults()
	}
}
