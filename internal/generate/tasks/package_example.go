// SPDX-License-Identifier: MPL-2.0

package tasks

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"pumlgen/internal/generate"
	"pumlgen/internal/manifest"
	"pumlgen/internal/plantuml"
	"pumlgen/internal/template"
	"pumlgen/pkg/fsutil"
)

// packageExampleTask generates the source of a package example and renders
// it into an image.
type packageExampleTask struct {
	generate.NoopTask

	PackageUrn string
	PathToBase string

	template       string
	fullSourcePath string
	fullImagePath  string
}

func newPackageExampleTask(cfg generate.Config, library *manifest.Library, pkg *manifest.Package, example manifest.Example) *packageExampleTask {
	return &packageExampleTask{
		PackageUrn:     pkg.Urn.Value,
		PathToBase:     pkg.Urn.PathToBase,
		template:       example.Template,
		fullSourcePath: filepath.Join(cfg.OutputDirectory, example.SourcePath(pkg.Urn)),
		fullImagePath:  filepath.Join(cfg.OutputDirectory, example.DestinationPath(pkg.Urn, library.Customization.IconFormat)),
	}
}

func (t *packageExampleTask) Cleanup(scopes []generate.CleanupScope) error {
	log.Debug("packageExampleTask - cleanup", "template", t.template)
	if generate.ScopeExample.IncludedIn(scopes) {
		if err := fsutil.DeleteFile(t.fullSourcePath); err != nil {
			return err
		}
		return fsutil.DeleteFile(t.fullImagePath)
	}
	return nil
}

func (t *packageExampleTask) RenderAtomicTemplates(engine *template.Engine) error {
	log.Debug("packageExampleTask - render templates", "template", t.template)
	return renderIfMissing(engine, t.template, t, t.fullSourcePath)
}

func (t *packageExampleTask) RenderSources(ctx context.Context, uml *plantuml.PlantUML) error {
	log.Debug("packageExampleTask - render sources", "template", t.template)
	if fsutil.FileExists(t.fullImagePath) {
		return nil
	}
	return uml.Render(ctx, t.fullSourcePath)
}
