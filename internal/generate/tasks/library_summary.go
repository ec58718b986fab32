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

type librarySummaryItem struct {
	ItemUrn string
}

type librarySummaryModule struct {
	ModuleUrn string
	Items     []librarySummaryItem
}

type librarySummaryPackage struct {
	PackageUrn string
	Modules    []librarySummaryModule
}

// librarySummaryTask generates `<output>/SUMMARY.md`.
type librarySummaryTask struct {
	generate.NoopTask

	LibraryName string
	Packages    []librarySummaryPackage

	outputDirectory string
	template        string
}

func newLibrarySummaryTask(cfg generate.Config, library *manifest.Library) *librarySummaryTask {
	packages := make([]librarySummaryPackage, 0, len(library.Packages))
	for _, pkg := range library.Packages {
		modules := make([]librarySummaryModule, 0, len(pkg.Modules))
		for _, module := range pkg.Modules {
			items := make([]librarySummaryItem, 0, len(module.Items))
			for _, item := range module.Items {
				items = append(items, librarySummaryItem{ItemUrn: item.Urn.Value})
			}
			modules = append(modules, librarySummaryModule{ModuleUrn: module.Urn.Value, Items: items})
		}
		packages = append(packages, librarySummaryPackage{PackageUrn: pkg.Urn.Value, Modules: modules})
	}
	return &librarySummaryTask{
		LibraryName:     library.Name,
		Packages:        packages,
		outputDirectory: cfg.OutputDirectory,
		template:        library.Templates.Summary,
	}
}

func (t *librarySummaryTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, "SUMMARY.md")
}

func (t *librarySummaryTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("librarySummaryTask - cleanup", "library", t.LibraryName)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *librarySummaryTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("librarySummaryTask - render templates", "library", t.LibraryName)
	return renderIfMissing(engine, t.template, t, t.destinationPath())
}
