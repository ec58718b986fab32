// SPDX-License-Identifier: MPL-2.0

package manifest

import "pumlgen/internal/urn"

// Package groups modules and examples under a common URN.
type Package struct {
	// Urn of the package.
	Urn urn.Urn `yaml:"urn" json:"urn" jsonschema:"required"`
	// Modules provided by the package.
	Modules []Module `yaml:"modules" json:"modules,omitempty"`
	// Examples provided by the package.
	Examples []Example `yaml:"examples" json:"examples,omitempty"`
	// Templates overrides the package-level template names.
	Templates PackageTemplates `yaml:"templates" json:"templates,omitempty"`
	// Rendering tunes which package artifacts get generated.
	Rendering PackageRendering `yaml:"rendering" json:"rendering,omitempty"`
}

// PackageTemplates names the templates of the package-level artifacts.
type PackageTemplates struct {
	// Bootstrap generates `<package>/bootstrap.puml`.
	Bootstrap string `yaml:"bootstrap" json:"bootstrap,omitempty"`
	// Embedded generates `<package>/single.puml` and `<package>/full.puml`.
	Embedded string `yaml:"embedded" json:"embedded,omitempty"`
	// Documentation generates `<package>/README.md`.
	Documentation string `yaml:"documentation" json:"documentation,omitempty"`
}

// PackageRendering tunes which package artifacts get generated.
type PackageRendering struct {
	// SkipEmbedded skips the generation of single.puml and full.puml.
	SkipEmbedded bool `yaml:"skip_embedded" json:"skip_embedded,omitempty"`
}

func (p *Package) applyDefaults() {
	setDefault(&p.Templates.Bootstrap, DefaultTemplatePackageBootstrap)
	setDefault(&p.Templates.Embedded, DefaultTemplatePackageEmbedded)
	setDefault(&p.Templates.Documentation, DefaultTemplatePackageDocumentation)
	for i := range p.Modules {
		p.Modules[i].applyDefaults()
	}
}
