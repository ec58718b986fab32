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

type libraryDocumentationPackage struct {
	PackageUrn string
}

// libraryDocumentationTask generates `<output>/README.md`.
type libraryDocumentationTask struct {
	generate.NoopTask

	LibraryName string
	RemoteURL   string
	Packages    []libraryDocumentationPackage

	outputDirectory string
	template        string
}

func newLibraryDocumentationTask(cfg generate.Config, library *manifest.Library) *libraryDocumentationTask {
	packages := make([]libraryDocumentationPackage, 0, len(library.Packages))
	for _, pkg := range library.Packages {
		packages = append(packages, libraryDocumentationPackage{PackageUrn: pkg.Urn.Value})
	}
	return &libraryDocumentationTask{
		LibraryName:     library.Name,
		RemoteURL:       library.RemoteURL,
		Packages:        packages,
		outputDirectory: cfg.OutputDirectory,
		template:        library.Templates.Documentation,
	}
}

func (t *libraryDocumentationTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, "README.md")
}

func (t *libraryDocumentationTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("libraryDocumentationTask - cleanup", "library", t.LibraryName)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *libraryDocumentationTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("libraryDocumentationTask - render templates", "library", t.LibraryName)
	return renderIfMissing(engine, t.template, t, t.destinationPath())
}
