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

// packageBootstrapTask generates `<output>/<package>/bootstrap.puml`.
type packageBootstrapTask struct {
	generate.NoopTask

	PackageUrn string

	outputDirectory string
	template        string
}

func newPackageBootstrapTask(cfg generate.Config, pkg *manifest.Package) *packageBootstrapTask {
	return &packageBootstrapTask{
		PackageUrn:      pkg.Urn.Value,
		outputDirectory: cfg.OutputDirectory,
		template:        pkg.Templates.Bootstrap,
	}
}

func (t *packageBootstrapTask) destinationPath() string {
	return filepath.Join(t.outputDirectory, t.PackageUrn, "bootstrap.puml")
}

func (t *packageBootstrapTask) Cleanup([]generate.CleanupScope) error {
	log.Debug("packageBootstrapTask - cleanup", "package", t.PackageUrn)
	return fsutil.DeleteFile(t.destinationPath())
}

func (t *packageBootstrapTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("packageBootstrapTask - render templates", "package", t.PackageUrn)
	return renderIfMissing(engine, t.template, t, t.destinationPath())
}
