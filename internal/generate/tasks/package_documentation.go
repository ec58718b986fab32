// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

type packageDocumentationModule struct {
	ModuleUrn  string
	ModuleName string
	NbrItems   int
}

type packageDocumentationExample struct {
	Name        string
	Destination string
	Source      string
}

// packageDocumentationTask generates `<output>/<package>/README.md`.
type packageDocumentationTask struct {
	generate.NoopTask

	PackageUrn        string
	PackageName       string
	RemoteURL         string
	PathToBase        string
	IsEmbeddedEnabled bool
	Modules           []packageDocumentationModule
	Examples          []packageDocumentationExample

	outputDirectory string
	template        string
}

func newPackageDocumentationTask(cfg generate.Config, library *manifest.Library, pkg *manifest.Package) *packageDocumentationTask {
	modules := make([]packageDocumentationModule, 0, len(pkg.Modules))
	for _, module := range pkg.Modules {
		modules = append(modules, packageDocumentationModule{
			ModuleUrn:  module.Urn.Value,
			ModuleName: module.Urn.Name,
			NbrItems:   len(module.Items),
		})
	}
	examples := make([]packageDocumentationExample, 0, len(pkg.Examples))
	for _, example := range pkg.Examples {
		examples = append(examples, packageDocumentationExample{
			Name:        example.Name,
			Destination: example.DestinationPath(pkg.Urn, library.Customization.IconFormat),
			Source:      example.SourcePath(pkg.Urn),
		})
	}
	return &packageDocumentationTask{
		PackageUrn:        pkg.Urn.Value,
		PackageName:       pkg.Urn.Name,
		RemoteURL:         library.RemoteURL,
		PathToBase:        pkg.Urn.PathToBase,
		IsEmbeddedEnabled: !pkg.Rendering.SkipEmbedded,
		Modules:           modules,
		Examples:          examples,
		outputDirectory:   cfg.OutputDirectory,
		template:          pkg.Templates.Documentation,
	}
}

func (t *packageDocumentationTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, t.PackageUrn, "README.md")
}

func (t *packageDocumentationTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("packageDocumentationTask - cleanup", "package", t.PackageUrn)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *packageDocumentationTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("packageDocumentationTask - render templates", "package", t.PackageUrn)
	return renderIfMissing(engine, t.template, t, t.destinationPath())
}
